package entity

// Guild-scoped objects a moderator can act on. Each carries its owning guild
// and, where relevant, the member it came from.

type Invite struct {
	Code      string
	GuildID   ID
	ChannelID ID
	InviterID ID
}

type Webhook struct {
	ID        ID
	GuildID   ID
	ChannelID ID
	Name      string
}

type Emoji struct {
	ID      ID
	GuildID ID
	Name    string

	// Managed emojis come from an integration and cannot be touched.
	Managed bool
}

type Sticker struct {
	ID      ID
	GuildID ID
	Name    string
}

type ScheduledEvent struct {
	ID        ID
	GuildID   ID
	CreatorID ID
	Name      string
}
