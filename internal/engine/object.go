package engine

import (
	"context"

	"github.com/guildpoint/moderation/internal/entity"
)

// MessageDeletable checks if a message can be deleted. Authorship wins before
// anything else: an author always deletes their own message, no matter what
// the channel overwrites say. For someone else's message the moderator needs
// ManageMessages guild-wide and in the channel, and must outrank the author
// when the author is still around.
//
// The author snapshot is optional; pass nil when the author already left the
// guild and the hierarchy half is skipped.
func (e *Engine) MessageDeletable(
	ctx context.Context,
	message *entity.Message,
	author *entity.Member,
	moderator *entity.Member,
	guild *entity.Guild,
	channel *entity.Channel,
) (Verdict, error) {
	if moderator == nil || guild == nil || channel == nil {
		return badCall("moderator, guild and channel are required")
	}

	verdict := func() Verdict {
		if message == nil || message.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if channel.GuildID != guild.ID || message.ChannelID != channel.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if message.AuthorID == moderator.ID {
			return allow(ReasonSelfAuthored)
		}
		if guild.IsOwner(moderator.ID) {
			return allow(ReasonOwnerBypass)
		}
		if !Permissions(guild, moderator).Has(entity.ManageMessages) {
			return deny(ReasonInsufficientPermission)
		}
		if !PermissionsIn(guild, moderator, channel).Has(entity.ManageMessages) {
			return deny(ReasonInsufficientPermission)
		}
		if author != nil && author.ID == message.AuthorID && author.GuildID == guild.ID {
			if guild.IsOwner(author.ID) {
				return deny(ReasonOwnerImmune)
			}
			if !e.outranks(guild, moderator, author) {
				return deny(ReasonHierarchyViolation)
			}
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "delete message", verdict)
}

// EmojiManageable checks if an emoji can be edited or deleted.
func (e *Engine) EmojiManageable(ctx context.Context, emoji *entity.Emoji, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if emoji == nil || emoji.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if emoji.Managed {
			return deny(ReasonManagedEntity)
		}
		if !Permissions(guild, moderator).Has(entity.ManageExpressions) {
			return deny(ReasonInsufficientPermission)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage emoji", verdict)
}

// StickerManageable checks if a sticker can be edited or deleted.
func (e *Engine) StickerManageable(ctx context.Context, sticker *entity.Sticker, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if sticker == nil || sticker.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if !Permissions(guild, moderator).Has(entity.ManageExpressions) {
			return deny(ReasonInsufficientPermission)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage sticker", verdict)
}

// WebhookManageable checks if a webhook can be edited or deleted, optionally
// re-checking ManageWebhooks inside the webhook's channel.
func (e *Engine) WebhookManageable(ctx context.Context, webhook *entity.Webhook, moderator *entity.Member, guild *entity.Guild, channel *entity.Channel) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if webhook == nil || webhook.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if !Permissions(guild, moderator).Has(entity.ManageWebhooks) {
			return deny(ReasonInsufficientPermission)
		}
		if channel != nil {
			if channel.GuildID != guild.ID || (webhook.ChannelID != 0 && webhook.ChannelID != channel.ID) {
				return deny(ReasonStaleEntity)
			}
			if !PermissionsIn(guild, moderator, channel).Has(entity.ManageWebhooks) {
				return deny(ReasonInsufficientPermission)
			}
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage webhook", verdict)
}

// InviteManageable checks if an invite can be revoked: ManageGuild, or
// ManageChannels scoped to the invite's channel. A moderator never revokes an
// invite from someone ranked at or above them, except their own.
func (e *Engine) InviteManageable(
	ctx context.Context,
	invite *entity.Invite,
	moderator *entity.Member,
	guild *entity.Guild,
	inviter *entity.Member,
	channel *entity.Channel,
) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if invite == nil || invite.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}

		allowed := Permissions(guild, moderator).Has(entity.ManageGuild)
		if !allowed && channel != nil && channel.GuildID == guild.ID && channel.ID == invite.ChannelID {
			allowed = PermissionsIn(guild, moderator, channel).Has(entity.ManageChannels)
		}
		if !allowed {
			return deny(ReasonInsufficientPermission)
		}

		if inviter != nil && inviter.ID == invite.InviterID && inviter.GuildID == guild.ID &&
			inviter.ID != moderator.ID && !e.outranks(guild, moderator, inviter) {
			return deny(ReasonHierarchyViolation)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage invite", verdict)
}

// EventManageable checks if a scheduled event can be edited or cancelled.
// Creators manage their own events once they hold ManageEvents themselves.
func (e *Engine) EventManageable(ctx context.Context, event *entity.ScheduledEvent, moderator *entity.Member, guild *entity.Guild, creator *entity.Member) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	verdict := func() Verdict {
		if event == nil || event.GuildID != guild.ID {
			return deny(ReasonStaleEntity)
		}
		if moderator.GuildID != guild.ID {
			return deny(ReasonCrossGuild)
		}
		if !Permissions(guild, moderator).Has(entity.ManageEvents) {
			return deny(ReasonInsufficientPermission)
		}
		if event.CreatorID != 0 && event.CreatorID == moderator.ID {
			return allow(ReasonCreatorBypass)
		}
		if creator != nil && creator.ID == event.CreatorID && creator.GuildID == guild.ID &&
			!e.outranks(guild, moderator, creator) {
			return deny(ReasonHierarchyViolation)
		}

		return allow(ReasonAllowed)
	}()

	return e.report(ctx, "manage event", verdict)
}
