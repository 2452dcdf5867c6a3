package services

import "skillsphere/pkg/utils"

type Scope int

const (
	// OwnerOnly allows the recorded owner and nobody else.
	OwnerOnly Scope = iota
	// OwnerOrAdmin additionally allows any admin principal.
	OwnerOrAdmin
)

// OwnershipGuard decides whether a caller may mutate a resource. It only
// compares ids that were already loaded and performs no I/O.
type OwnershipGuard struct{}

func (OwnershipGuard) Authorize(ownerID uint, caller *Principal, scope Scope) error {
	if caller == nil {
		return utils.ErrUnauthenticated
	}
	// Admin ids live in their own table and may collide with user ids.
	if caller.Source == SourceUser && caller.ID == ownerID {
		return nil
	}
	if scope == OwnerOrAdmin && caller.IsAdmin {
		return nil
	}
	return utils.NewForbiddenError("you are not allowed to modify this resource")
}
