package entity

type Role struct {
	ID      ID
	GuildID ID
	Name    string

	// Position in the guild hierarchy, strictly ordered and unique within
	// the guild. The everyone tier is position zero.
	Position int

	Permissions PermissionSet

	// Managed roles belong to an external integration and are immutable by
	// moderators regardless of hierarchy or permissions.
	Managed bool

	// Default marks the guild's everyone role when the caller snapshots it
	// explicitly.
	Default bool

	// PremiumSubscriber marks the platform-assigned booster role.
	PremiumSubscriber bool
}

// Targetable reports whether moderators may delete or assign this role at
// all. Hierarchy and permission checks come on top of this.
func (r *Role) Targetable() bool {
	return !r.Managed && !r.Default && !r.PremiumSubscriber
}
