package engine

import (
	"context"

	"github.com/guildpoint/moderation/config"
	"github.com/guildpoint/moderation/internal/entity"
	"github.com/guildpoint/moderation/pkg/errorx"
	"github.com/guildpoint/moderation/pkg/xcontext"
)

// Engine answers "may this moderator perform this action on this target"
// over caller-supplied snapshots. It keeps no state besides its immutable
// policy configs, performs no I/O, and is safe for unbounded concurrent use.
//
// Every decision fails closed: a missing target, a cross-guild pair, or any
// other structurally broken input resolves to a denial, never a panic. The
// error return is reserved for invalid call shapes (a nil required
// argument), so a caller bug is never mistaken for a policy denial.
type Engine struct {
	cfg config.PolicyConfigs
}

func New(cfg config.PolicyConfigs) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) report(ctx context.Context, action string, v Verdict) (Verdict, error) {
	if !v.Allowed {
		xcontext.Logger(ctx).Debugf("Denied %s: %s", action, v.Reason)
	}

	return v, nil
}

func badCall(msg string) (Verdict, error) {
	return Verdict{}, errorx.New(errorx.BadRequest, msg)
}

// outranks applies the configured hierarchy policy: owner supremacy always,
// administrator bypass only when explicitly enabled.
func (e *Engine) outranks(guild *entity.Guild, moderator, target *entity.Member) bool {
	if e.cfg.AdminBypassesHierarchy && Permissions(guild, moderator).Has(entity.Administrator) {
		return true
	}

	return Outranks(guild, moderator, target)
}

type memberAction struct {
	required entity.PermissionFlag

	// adminImmune protects administrator targets the way the owner is
	// protected. Punitive actions set it, nickname management does not.
	adminImmune bool
}

// memberVerdict is the shared gate for every member-target action.
func (e *Engine) memberVerdict(guild *entity.Guild, target, moderator *entity.Member, action memberAction) Verdict {
	if target == nil || target.GuildID != guild.ID {
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
	if !Permissions(guild, moderator).Has(action.required) {
		return deny(ReasonInsufficientPermission)
	}
	if action.adminImmune && Permissions(guild, target).Has(entity.Administrator) {
		return deny(ReasonAdminImmune)
	}
	if !e.outranks(guild, moderator, target) {
		return deny(ReasonHierarchyViolation)
	}

	return allow(ReasonAllowed)
}
