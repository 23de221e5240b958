// Package moderation decides whether a moderator is permitted to perform a
// moderation action (kick, ban, timeout, channel or role management, ...)
// against a target entity of the same guild. Decisions combine explicit
// permission grants, role-position hierarchy and per-action exceptions such
// as owner supremacy and integration-managed roles.
//
// The engine is purely functional over caller-built snapshots: it performs
// no I/O, holds no state across calls and is safe for concurrent use. How
// snapshots are fetched, and what happens after an allowed verdict, is the
// hosting application's business.
package moderation

import (
	"github.com/guildpoint/moderation/config"
	"github.com/guildpoint/moderation/internal/engine"
	"github.com/guildpoint/moderation/internal/entity"
)

// Snapshot types, as described to the engine by the caller.
type (
	ID             = entity.ID
	Guild          = entity.Guild
	Role           = entity.Role
	Member         = entity.Member
	Channel        = entity.Channel
	ChannelType    = entity.ChannelType
	Overwrite      = entity.Overwrite
	OverwriteType  = entity.OverwriteType
	Thread         = entity.Thread
	Message        = entity.Message
	Invite         = entity.Invite
	Webhook        = entity.Webhook
	Emoji          = entity.Emoji
	Sticker        = entity.Sticker
	ScheduledEvent = entity.ScheduledEvent
	VoiceState     = entity.VoiceState

	PermissionFlag = entity.PermissionFlag
	PermissionSet  = entity.PermissionSet
)

var (
	ChannelText     = entity.ChannelText
	ChannelVoice    = entity.ChannelVoice
	ChannelCategory = entity.ChannelCategory
	ChannelStage    = entity.ChannelStage
	ChannelForum    = entity.ChannelForum

	OverwriteRole   = entity.OverwriteRole
	OverwriteMember = entity.OverwriteMember
)

const (
	CreateInstantInvite = entity.CreateInstantInvite
	KickMembers         = entity.KickMembers
	BanMembers          = entity.BanMembers
	Administrator       = entity.Administrator
	ManageChannels      = entity.ManageChannels
	ManageGuild         = entity.ManageGuild
	ViewChannel         = entity.ViewChannel
	SendMessages        = entity.SendMessages
	ManageMessages      = entity.ManageMessages
	Connect             = entity.Connect
	Speak               = entity.Speak
	MuteMembers         = entity.MuteMembers
	DeafenMembers       = entity.DeafenMembers
	MoveMembers         = entity.MoveMembers
	ChangeNickname      = entity.ChangeNickname
	ManageNicknames     = entity.ManageNicknames
	ManageRoles         = entity.ManageRoles
	ManageWebhooks      = entity.ManageWebhooks
	ManageExpressions   = entity.ManageExpressions
	ManageEvents        = entity.ManageEvents
	ManageThreads       = entity.ManageThreads
	RequestToSpeak      = entity.RequestToSpeak
	ModerateMembers     = entity.ModerateMembers

	AllPermissions = entity.AllPermissions
)

// Engine is the moderation policy engine; construct one with New.
type (
	Engine  = engine.Engine
	Verdict = engine.Verdict
	Reason  = engine.Reason
	Rank    = engine.Rank
)

var (
	ReasonAllowed                = engine.ReasonAllowed
	ReasonOwnerBypass            = engine.ReasonOwnerBypass
	ReasonSelfAuthored           = engine.ReasonSelfAuthored
	ReasonCreatorBypass          = engine.ReasonCreatorBypass
	ReasonStaleEntity            = engine.ReasonStaleEntity
	ReasonCrossGuild             = engine.ReasonCrossGuild
	ReasonSelfAction             = engine.ReasonSelfAction
	ReasonOwnerImmune            = engine.ReasonOwnerImmune
	ReasonAdminImmune            = engine.ReasonAdminImmune
	ReasonInsufficientPermission = engine.ReasonInsufficientPermission
	ReasonHierarchyViolation     = engine.ReasonHierarchyViolation
	ReasonManagedEntity          = engine.ReasonManagedEntity
)

func New(cfg config.PolicyConfigs) *Engine {
	return engine.New(cfg)
}

// Permissions resolves a member's guild-wide permission set.
func Permissions(guild *Guild, member *Member) PermissionSet {
	return engine.Permissions(guild, member)
}

// PermissionsIn resolves a member's permission set inside a channel,
// applying the channel's overwrites.
func PermissionsIn(guild *Guild, member *Member, channel *Channel) PermissionSet {
	return engine.PermissionsIn(guild, member, channel)
}

// RankOf computes a member's hierarchy rank; the owner ranks above every
// role position.
func RankOf(guild *Guild, member *Member) Rank {
	return engine.RankOf(guild, member)
}

// Outranks reports whether a sits strictly above b in the guild hierarchy.
func Outranks(guild *Guild, a, b *Member) bool {
	return engine.Outranks(guild, a, b)
}
