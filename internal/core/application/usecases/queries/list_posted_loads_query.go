package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrListPostedLoadsQueryIsNotConstructed = errors.New(
	"ListPostedLoadsQuery must be created via NewListPostedLoadsQuery constructor",
)

// ListPostedLoadsQuery lists every load the calling business posted, in any status.
//
// Example:
//
//	query, err := NewListPostedLoadsQuery(business)
//	if err != nil {
//	    return err // not a business
//	}
//	views, err := handler.Handle(ctx, query)
type ListPostedLoadsQuery struct {
	businessID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewListPostedLoadsQuery rejects actors that are not businesses with an
// ActorIsNotAuthorizedError.
func NewListPostedLoadsQuery(actor kernel.Actor) (ListPostedLoadsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPostedLoadsQuery{}, err
	}
	if !actor.IsBusiness() {
		return ListPostedLoadsQuery{}, errs.NewActorIsNotAuthorizedError(actor.Role().String(), "list posted loads")
	}

	return ListPostedLoadsQuery{businessID: actor.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListPostedLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListPostedLoadsQueryIsNotConstructed)
}

func (q ListPostedLoadsQuery) BusinessID() kernel.UUID {
	return q.businessID
}
