package engine

import "github.com/guildpoint/moderation/pkg/enum"

// Reason explains a verdict. Reasons are policy outcomes, not errors: a
// denial is a valid answer, never a failure.
type Reason string

var (
	ReasonAllowed                = enum.New(Reason("allowed"))
	ReasonOwnerBypass            = enum.New(Reason("owner_bypass"))
	ReasonSelfAuthored           = enum.New(Reason("self_authored"))
	ReasonCreatorBypass          = enum.New(Reason("creator_bypass"))
	ReasonStaleEntity            = enum.New(Reason("stale_entity"))
	ReasonCrossGuild             = enum.New(Reason("cross_guild"))
	ReasonSelfAction             = enum.New(Reason("self_action"))
	ReasonOwnerImmune            = enum.New(Reason("owner_immune"))
	ReasonAdminImmune            = enum.New(Reason("admin_immune"))
	ReasonInsufficientPermission = enum.New(Reason("insufficient_permission"))
	ReasonHierarchyViolation     = enum.New(Reason("hierarchy_violation"))
	ReasonManagedEntity          = enum.New(Reason("managed_entity"))
)

// Verdict is one authorization decision.
type Verdict struct {
	Allowed bool
	Reason  Reason
}

func allow(reason Reason) Verdict {
	return Verdict{Allowed: true, Reason: reason}
}

func deny(reason Reason) Verdict {
	return Verdict{Allowed: false, Reason: reason}
}
