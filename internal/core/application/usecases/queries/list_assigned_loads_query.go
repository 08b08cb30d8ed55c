package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrListAssignedLoadsQueryIsNotConstructed = errors.New(
	"ListAssignedLoadsQuery must be created via NewListAssignedLoadsQuery constructor",
)

// ListAssignedLoadsQuery lists the calling trucker's jobs: every load that records
// them as assignee, in any status.
type ListAssignedLoadsQuery struct {
	truckerID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewListAssignedLoadsQuery(actor kernel.Actor) (ListAssignedLoadsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAssignedLoadsQuery{}, err
	}
	if !actor.IsTrucker() {
		return ListAssignedLoadsQuery{}, errs.NewActorIsNotAuthorizedError(actor.Role().String(), "list assigned loads")
	}

	return ListAssignedLoadsQuery{truckerID: actor.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListAssignedLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListAssignedLoadsQueryIsNotConstructed)
}

func (q ListAssignedLoadsQuery) TruckerID() kernel.UUID {
	return q.truckerID
}
