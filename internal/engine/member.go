package engine

import (
	"context"

	"github.com/guildpoint/moderation/internal/entity"
)

// Kickable checks if a member can be kicked by the moderator.
func (e *Engine) Kickable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "kick", e.memberVerdict(guild, target, moderator, memberAction{
		required:    entity.KickMembers,
		adminImmune: true,
	}))
}

// Bannable checks if a member can be banned by the moderator.
func (e *Engine) Bannable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "ban", e.memberVerdict(guild, target, moderator, memberAction{
		required:    entity.BanMembers,
		adminImmune: true,
	}))
}

// Mutable checks if a member can be put in timeout. The owner is never
// eligible for timeout, which the shared owner-immunity rule already covers.
func (e *Engine) Mutable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "timeout", e.memberVerdict(guild, target, moderator, memberAction{
		required:    entity.ModerateMembers,
		adminImmune: true,
	}))
}

// Manageable checks if a member's nickname and similar attributes can be
// managed by the moderator.
func (e *Engine) Manageable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "manage member", e.memberVerdict(guild, target, moderator, memberAction{
		required: entity.ManageNicknames,
	}))
}

// voiceVerdict layers an optional voice-channel scope on top of the shared
// member gate: inside the scope the moderator needs the action capability
// plus Connect and ViewChannel.
func (e *Engine) voiceVerdict(
	guild *entity.Guild,
	target, moderator *entity.Member,
	channel *entity.Channel,
	action memberAction,
) Verdict {
	v := e.memberVerdict(guild, target, moderator, action)
	if !v.Allowed || v.Reason == ReasonOwnerBypass || channel == nil {
		return v
	}

	if channel.GuildID != guild.ID {
		return deny(ReasonStaleEntity)
	}
	if !PermissionsIn(guild, moderator, channel).HasAll(action.required, entity.Connect, entity.ViewChannel) {
		return deny(ReasonInsufficientPermission)
	}

	return v
}

// VoiceMoveable checks if a member can be moved between voice channels,
// optionally scoped to one voice channel.
func (e *Engine) VoiceMoveable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild, channel *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}
	if channel != nil && !channel.IsVoiceLike() {
		return badCall("voice scope must be a voice or stage channel")
	}

	return e.report(ctx, "voice move", e.voiceVerdict(guild, target, moderator, channel, memberAction{
		required:    entity.MoveMembers,
		adminImmune: true,
	}))
}

// VoiceMutable checks if a member can be muted in voice.
func (e *Engine) VoiceMutable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild, channel *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}
	if channel != nil && !channel.IsVoiceLike() {
		return badCall("voice scope must be a voice or stage channel")
	}

	return e.report(ctx, "voice mute", e.voiceVerdict(guild, target, moderator, channel, memberAction{
		required:    entity.MuteMembers,
		adminImmune: true,
	}))
}

// VoiceDeafenable checks if a member can be deafened in voice.
func (e *Engine) VoiceDeafenable(ctx context.Context, target, moderator *entity.Member, guild *entity.Guild, channel *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}
	if channel != nil && !channel.IsVoiceLike() {
		return badCall("voice scope must be a voice or stage channel")
	}

	return e.report(ctx, "voice deafen", e.voiceVerdict(guild, target, moderator, channel, memberAction{
		required:    entity.DeafenMembers,
		adminImmune: true,
	}))
}

// StageSpeakable checks if the moderator may toggle a member's speaker state
// in a stage channel. Granting and revoking go through the same gate:
// MuteMembers in the stage scope, or request-to-speak authority.
func (e *Engine) StageSpeakable(
	ctx context.Context,
	target, moderator *entity.Member,
	guild *entity.Guild,
	stage *entity.Channel,
	state *entity.VoiceState,
) (Verdict, error) {
	if moderator == nil || guild == nil || stage == nil {
		return badCall("moderator, guild and stage are required")
	}
	if stage.Type != entity.ChannelStage {
		return badCall("stage scope must be a stage channel")
	}

	verdict := func() Verdict {
		if target == nil || target.GuildID != guild.ID || stage.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		// A voice state pointing at another channel means the member is
		// not in this stage anymore.
		if state != nil && state.ChannelID != stage.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if target.ID == moderator.ID {
			return deny(ReasonSelfAction)
		}
		if guild.IsOwner(target.ID) {
			return deny(ReasonOwnerImmune)
		}
		if guild.IsOwner(moderator.ID) {
			return allow(ReasonOwnerBypass)
		}

		perms := PermissionsIn(guild, moderator, stage)
		if !perms.Has(entity.MuteMembers) && !perms.Has(entity.RequestToSpeak) {
			return deny(ReasonInsufficientPermission)
		}
		if !e.outranks(guild, moderator, target) {
			return deny(ReasonHierarchyViolation)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "stage speak", verdict)
}

// BotVerified reports whether the target is a platform-verified bot. This is
// the one predicate with no actor: it inspects the target alone.
func (e *Engine) BotVerified(target *entity.Member) bool {
	return target != nil && target.IsBot && target.IsVerifiedBot
}
