package testutil

import (
	"github.com/guildpoint/moderation/internal/entity"
	"github.com/guildpoint/moderation/pkg/idutil"
)

// Fixture is the standard guild used across engine tests: an owner, an
// administrator (position 10), a moderator (position 5) and a plain member
// (position 1).
type Fixture struct {
	Guild *entity.Guild

	AdminRole  entity.Role
	ModRole    entity.Role
	MemberRole entity.Role

	Owner     *entity.Member
	Admin     *entity.Member
	Moderator *entity.Member
	Member    *entity.Member
}

// ModPermissions is the moderator kit granted to the fixture's position-5
// role: everything a working moderator holds, short of Administrator and
// ManageGuild.
var ModPermissions = entity.PermissionSet(0).
	Add(
		entity.KickMembers,
		entity.BanMembers,
		entity.ModerateMembers,
		entity.ManageNicknames,
		entity.ManageRoles,
		entity.ManageMessages,
		entity.ManageChannels,
		entity.ManageThreads,
		entity.ManageWebhooks,
		entity.ManageExpressions,
		entity.ManageEvents,
		entity.MuteMembers,
		entity.DeafenMembers,
		entity.MoveMembers,
		entity.Connect,
		entity.ViewChannel,
	)

func NewFixture() *Fixture {
	guildID := idutil.Generate()

	adminRole := SampleRole(&entity.Role{
		GuildID:     guildID,
		Name:        "admin",
		Position:    10,
		Permissions: entity.PermissionSet(0).Add(entity.Administrator),
	})
	modRole := SampleRole(&entity.Role{
		GuildID:     guildID,
		Name:        "mod",
		Position:    5,
		Permissions: ModPermissions,
	})
	memberRole := SampleRole(&entity.Role{
		GuildID:     guildID,
		Name:        "member",
		Position:    1,
		Permissions: entity.PermissionSet(0).Add(entity.ViewChannel, entity.SendMessages, entity.Connect),
	})

	owner := SampleMember(&entity.Member{GuildID: guildID})
	admin := SampleMember(&entity.Member{GuildID: guildID, RoleIDs: []entity.ID{adminRole.ID}})
	moderator := SampleMember(&entity.Member{GuildID: guildID, RoleIDs: []entity.ID{modRole.ID}})
	member := SampleMember(&entity.Member{GuildID: guildID, RoleIDs: []entity.ID{memberRole.ID}})

	guild := SampleGuild(&entity.Guild{
		ID:                 guildID,
		OwnerID:            owner.ID,
		Roles:              []entity.Role{memberRole, modRole, adminRole},
		DefaultPermissions: entity.PermissionSet(0).Add(entity.ViewChannel, entity.SendMessages),
	})

	return &Fixture{
		Guild:      &guild,
		AdminRole:  adminRole,
		ModRole:    modRole,
		MemberRole: memberRole,
		Owner:      &owner,
		Admin:      &admin,
		Moderator:  &moderator,
		Member:     &member,
	}
}
