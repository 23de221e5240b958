package entity

type Message struct {
	ID        ID
	GuildID   ID
	ChannelID ID
	AuthorID  ID
}
