package engine

import (
	"context"

	"github.com/guildpoint/moderation/internal/entity"
)

// roleVerdict is the shared gate for role-target actions. Managed roles are
// immutable no matter who asks; the position check is strict and only the
// owner bypasses it.
func (e *Engine) roleVerdict(
	guild *entity.Guild,
	role *entity.Role,
	moderator *entity.Member,
	editOnly bool,
) Verdict {
	if role == nil || role.GuildID != guild.ID {
		return deny(ReasonStaleEntity)
	}
	if moderator.GuildID != guild.ID {
		return deny(ReasonCrossGuild)
	}

	// Managed and default roles stay untouchable even for the owner; the
	// booster role additionally blocks delete and assign.
	if role.Managed || role.Default {
		return deny(ReasonManagedEntity)
	}
	if !editOnly && !role.Targetable() {
		return deny(ReasonManagedEntity)
	}

	if guild.IsOwner(moderator.ID) {
		return allow(ReasonOwnerBypass)
	}
	if !Permissions(guild, moderator).Has(entity.ManageRoles) {
		return deny(ReasonInsufficientPermission)
	}
	if TopRolePosition(guild, moderator) <= role.Position {
		return deny(ReasonHierarchyViolation)
	}

	return allow(ReasonAllowed)
}

// RoleDeletable checks if a role can be deleted by the moderator.
func (e *Engine) RoleDeletable(ctx context.Context, role *entity.Role, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "delete role", e.roleVerdict(guild, role, moderator, false))
}

// RoleEditable checks if a role's name, color or permissions can be edited.
// The booster role allows cosmetic edits, so it passes this gate.
func (e *Engine) RoleEditable(ctx context.Context, role *entity.Role, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "edit role", e.roleVerdict(guild, role, moderator, true))
}

// RoleAssignable checks if the moderator may assign or remove this role.
// There is no member-target comparison here: the rank ceiling applies to the
// role being assigned, not to whoever receives it.
func (e *Engine) RoleAssignable(ctx context.Context, role *entity.Role, moderator *entity.Member, guild *entity.Guild) (Verdict, error) {
	if moderator == nil || guild == nil {
		return badCall("moderator and guild are required")
	}

	return e.report(ctx, "assign role", e.roleVerdict(guild, role, moderator, false))
}
