package engine

import (
	"github.com/guildpoint/moderation/internal/entity"

	mathUtil "github.com/pkg/math"
)

// Rank is a member's standing in the guild hierarchy: the owner sits above
// every role position, and positions compare strictly.
type Rank struct {
	owner    bool
	position int
}

func OwnerRank() Rank {
	return Rank{owner: true}
}

func PositionRank(position int) Rank {
	return Rank{position: position}
}

func (r Rank) GreaterThan(other Rank) bool {
	if r.owner {
		return !other.owner
	}
	if other.owner {
		return false
	}

	return r.position > other.position
}

// TopRolePosition is the highest position among the roles a member holds,
// zero (the everyone tier) when it holds none.
func TopRolePosition(guild *entity.Guild, member *entity.Member) int {
	position := 0
	for _, role := range guild.Roles {
		if member.HasRole(role.ID) {
			position = mathUtil.MaxInt(position, role.Position)
		}
	}

	return position
}

func RankOf(guild *entity.Guild, member *entity.Member) Rank {
	if guild.IsOwner(member.ID) {
		return OwnerRank()
	}

	return PositionRank(TopRolePosition(guild, member))
}

// Outranks reports whether a sits strictly above b. Equal ranks never
// outrank, so a member never outranks itself.
func Outranks(guild *entity.Guild, a, b *entity.Member) bool {
	return RankOf(guild, a).GreaterThan(RankOf(guild, b))
}
