package engine

import (
	"context"

	"github.com/guildpoint/moderation/internal/entity"
)

// channelVerdict gates a channel-target action on a capability held both
// guild-wide and inside the channel itself.
func (e *Engine) channelVerdict(
	guild *entity.Guild,
	channel *entity.Channel,
	moderator *entity.Member,
	required entity.PermissionFlag,
) Verdict {
	if channel == nil || channel.GuildID != guild.ID {
		return deny(ReasonStaleEntity)
	}
	if moderator.GuildID != guild.ID {
		return deny(ReasonCrossGuild)
	}
	if !Permissions(guild, moderator).Has(required) {
		return deny(ReasonInsufficientPermission)
	}
	if !PermissionsIn(guild, moderator, channel).Has(required) {
		return deny(ReasonInsufficientPermission)
	}

	return allow(ReasonAllowed)
}

// ChannelDeletable checks if a channel can be deleted. Threads have their own
// rule set, see ThreadDeletable.
func (e *Engine) ChannelDeletable(ctx context.Context, channel *entity.Channel, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "delete channel", e.channelVerdict(guild, channel, moderator, entity.ManageChannels))
}

// ChannelEditable checks if a channel's name, topic or permission overwrites
// can be edited.
func (e *Engine) ChannelEditable(ctx context.Context, channel *entity.Channel, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "edit channel", e.channelVerdict(guild, channel, moderator, entity.ManageChannels))
}

// StageManageable checks if a stage channel can be managed. Same gate as any
// channel, but the scope must actually be a stage.
func (e *Engine) StageManageable(ctx context.Context, stage *entity.Channel, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}
	if stage != nil && stage.Type != entity.ChannelStage {
		return badCall("stage scope must be a stage channel")
	}

	return e.report(ctx, "manage stage", e.channelVerdict(guild, stage, moderator, entity.ManageChannels))
}

// ThreadDeletable checks if a thread can be deleted: ManageChannels
// guild-wide, plus ManageChannels or ManageThreads in the parent channel.
// Without a parent snapshot the parent-scoped half falls back to the
// guild-wide set.
func (e *Engine) ThreadDeletable(ctx context.Context, thread *entity.Thread, moderator *entity.Member, guild *entity.Guild, parent *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if thread == nil || thread.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}

		perms := Permissions(guild, moderator)
		if !perms.Has(entity.ManageChannels) {
			return deny(ReasonInsufficientPermission)
		}

		scoped := perms
		if parent != nil {
			if parent.GuildID != guild.ID || thread.ParentID != parent.ID {
				return deny(ReasonStaleEntity)
			}
			scoped = PermissionsIn(guild, moderator, parent)
		}
		if !scoped.Has(entity.ManageChannels) && !scoped.Has(entity.ManageThreads) {
			return deny(ReasonInsufficientPermission)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "delete thread", verdict)
}

// ThreadManageable checks if a thread can be managed (archive, lock, edit).
// The thread's creator manages their own thread without any capability.
func (e *Engine) ThreadManageable(ctx context.Context, thread *entity.Thread, moderator *entity.Member, guild *entity.Guild, parent *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if thread == nil || thread.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if thread.OwnerID != 0 && thread.OwnerID == moderator.ID {
			return allow(ReasonCreatorBypass)
		}
		if !Permissions(guild, moderator).Has(entity.ManageThreads) {
			return deny(ReasonInsufficientPermission)
		}
		if parent != nil {
			if parent.GuildID != guild.ID || thread.ParentID != parent.ID {
				return deny(ReasonStaleEntity)
			}
			if !PermissionsIn(guild, moderator, parent).Has(entity.ManageThreads) {
				return deny(ReasonInsufficientPermission)
			}
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage thread", verdict)
}
