package entity

// PermissionFlag is one named capability. The enumeration is closed: every
// capability the policy engine gates on is listed here, so a misspelled
// capability is a compile error rather than a silent pass.
type PermissionFlag uint64

const (
	CreateInstantInvite PermissionFlag = 1 << iota
	KickMembers
	BanMembers
	Administrator
	ManageChannels
	ManageGuild
	ViewChannel
	SendMessages
	ManageMessages
	Connect
	Speak
	MuteMembers
	DeafenMembers
	MoveMembers
	ChangeNickname
	ManageNicknames
	ManageRoles
	ManageWebhooks
	ManageExpressions
	ManageEvents
	ManageThreads
	RequestToSpeak
	ModerateMembers

	numPermissions = iota
)

// AllPermissions is the universal set, held by the guild owner and by
// administrators.
const AllPermissions PermissionSet = 1<<numPermissions - 1

// PermissionSet is an immutable bitset of PermissionFlag. Administrator
// implies every other capability.
type PermissionSet uint64

func (s PermissionSet) Has(flag PermissionFlag) bool {
	if s&PermissionSet(Administrator) != 0 {
		return true
	}

	return s&PermissionSet(flag) != 0
}

func (s PermissionSet) HasAll(flags ...PermissionFlag) bool {
	for _, flag := range flags {
		if !s.Has(flag) {
			return false
		}
	}

	return true
}

func (s PermissionSet) Union(other PermissionSet) PermissionSet {
	return s | other
}

// Subtract removes every capability of other from s. Administrator implication
// does not apply here: overwrite resolution works on raw bits.
func (s PermissionSet) Subtract(other PermissionSet) PermissionSet {
	return s &^ other
}

func (s PermissionSet) Add(flags ...PermissionFlag) PermissionSet {
	for _, flag := range flags {
		s |= PermissionSet(flag)
	}

	return s
}

func (s PermissionSet) Remove(flags ...PermissionFlag) PermissionSet {
	for _, flag := range flags {
		s &^= PermissionSet(flag)
	}

	return s
}
