package entity

import "golang.org/x/exp/slices"

// Member is a point-in-time view of one guild member. A caller that finds the
// member gone passes nil instead; the engine treats that as a stale target.
type Member struct {
	ID      ID
	GuildID ID

	RoleIDs []ID

	IsBot         bool
	IsVerifiedBot bool
}

func (m *Member) HasRole(roleID ID) bool {
	return slices.Contains(m.RoleIDs, roleID)
}
