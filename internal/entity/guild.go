package entity

// Guild is a point-in-time view of a community. Roles are ordered by position
// ascending; positions are unique within a guild.
type Guild struct {
	ID      ID
	Name    string
	OwnerID ID

	// Roles ascending by Position. The everyone role is not listed here;
	// its grants live in DefaultPermissions at position zero.
	Roles []Role

	DefaultPermissions PermissionSet
}

func (g *Guild) IsOwner(memberID ID) bool {
	return memberID != 0 && memberID == g.OwnerID
}

func (g *Guild) RoleByID(id ID) (Role, bool) {
	for _, role := range g.Roles {
		if role.ID == id {
			return role, true
		}
	}

	return Role{}, false
}
