package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrListAvailableLoadsQueryIsNotConstructed = errors.New(
	"ListAvailableLoadsQuery must be created via NewListAvailableLoadsQuery constructor",
)

// ListAvailableLoadsQuery lists POSTED loads a trucker with the given capability
// can carry. The list is a snapshot: a load on it may be claimed by someone else
// before the caller's own claim arrives.
type ListAvailableLoadsQuery struct {
	capability load.Capability
	guard      guard.ConstructorGuard
}

// NewListAvailableLoadsQuery is open to truckers only.
func NewListAvailableLoadsQuery(actor kernel.Actor, capability load.Capability) (ListAvailableLoadsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAvailableLoadsQuery{}, err
	}
	if !actor.IsTrucker() {
		return ListAvailableLoadsQuery{}, errs.NewActorIsNotAuthorizedError(actor.Role().String(), "list available loads")
	}

	return ListAvailableLoadsQuery{capability: capability, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableLoadsQueryIsNotConstructed)
}

func (q ListAvailableLoadsQuery) Capability() load.Capability {
	return q.capability
}
