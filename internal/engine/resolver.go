package engine

import (
	"github.com/guildpoint/moderation/internal/entity"
)

// Permissions computes a member's guild-wide permission set: the guild
// defaults unioned with every held role. The owner and administrators hold
// the universal set.
func Permissions(guild *entity.Guild, member *entity.Member) entity.PermissionSet {
	if guild.IsOwner(member.ID) {
		return entity.AllPermissions
	}

	perms := guild.DefaultPermissions
	for _, role := range guild.Roles {
		if member.HasRole(role.ID) {
			perms = perms.Union(role.Permissions)
		}
	}

	if perms.Has(entity.Administrator) {
		return entity.AllPermissions
	}

	return perms
}

// PermissionsIn applies channel overwrites on top of the guild-wide set.
// Administrators bypass overwrites entirely. Role overwrites apply lowest
// position first, so on a per-capability conflict the highest role's entry
// wins; the member overwrite applies last and beats them all. A deny strips
// the capability, a later allow re-adds it.
func PermissionsIn(guild *entity.Guild, member *entity.Member, channel *entity.Channel) entity.PermissionSet {
	perms := Permissions(guild, member)
	if perms.Has(entity.Administrator) {
		return entity.AllPermissions
	}

	for _, role := range guild.Roles {
		if !member.HasRole(role.ID) {
			continue
		}
		if overwrite, ok := channel.OverwriteFor(entity.OverwriteRole, role.ID); ok {
			perms = perms.Subtract(overwrite.Deny).Union(overwrite.Allow)
		}
	}

	if overwrite, ok := channel.OverwriteFor(entity.OverwriteMember, member.ID); ok {
		perms = perms.Subtract(overwrite.Deny).Union(overwrite.Allow)
	}

	return perms
}
