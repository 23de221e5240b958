package entity

import "github.com/guildpoint/moderation/pkg/enum"

type ChannelType string

var (
	ChannelText     = enum.New(ChannelType("text"))
	ChannelVoice    = enum.New(ChannelType("voice"))
	ChannelCategory = enum.New(ChannelType("category"))
	ChannelStage    = enum.New(ChannelType("stage"))
	ChannelForum    = enum.New(ChannelType("forum"))
)

type OverwriteType string

var (
	OverwriteRole   = enum.New(OverwriteType("role"))
	OverwriteMember = enum.New(OverwriteType("member"))
)

// Overwrite is a per-channel permission override for one role or member.
type Overwrite struct {
	TargetID ID
	Type     OverwriteType
	Allow    PermissionSet
	Deny     PermissionSet
}

type Channel struct {
	ID      ID
	GuildID ID
	Name    string
	Type    ChannelType

	// ParentID points at the category, zero when top-level.
	ParentID ID

	Overwrites []Overwrite
}

func (c *Channel) OverwriteFor(typ OverwriteType, targetID ID) (Overwrite, bool) {
	for _, overwrite := range c.Overwrites {
		if overwrite.Type == typ && overwrite.TargetID == targetID {
			return overwrite, true
		}
	}

	return Overwrite{}, false
}

func (c *Channel) IsVoiceLike() bool {
	return c.Type == ChannelVoice || c.Type == ChannelStage
}

// Thread is a child conversation of a text or forum channel. Permission
// resolution for threads happens against the parent channel.
type Thread struct {
	ID       ID
	GuildID  ID
	ParentID ID
	Name     string

	// OwnerID is the member who created the thread.
	OwnerID ID
}
