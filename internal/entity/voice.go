package entity

// VoiceState is a member's live state in a voice or stage channel.
type VoiceState struct {
	MemberID  ID
	ChannelID ID

	// Suppressed means the member is in the audience of a stage channel.
	// Granting speak flips this off, revoking flips it back on; the
	// permission gate is the same either way.
	Suppressed bool

	RequestedToSpeak bool
}
