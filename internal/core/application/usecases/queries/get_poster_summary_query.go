package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrGetPosterSummaryQueryIsNotConstructed = errors.New(
	"GetPosterSummaryQuery must be created via NewGetPosterSummaryQuery constructor",
)

// GetPosterSummaryQuery counts the calling business's loads by phase.
type GetPosterSummaryQuery struct {
	businessID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetPosterSummaryQuery(actor kernel.Actor) (GetPosterSummaryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPosterSummaryQuery{}, err
	}
	if !actor.IsBusiness() {
		return GetPosterSummaryQuery{}, errs.NewActorIsNotAuthorizedError(actor.Role().String(), "read summary")
	}

	return GetPosterSummaryQuery{businessID: actor.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetPosterSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPosterSummaryQueryIsNotConstructed)
}

func (q GetPosterSummaryQuery) BusinessID() kernel.UUID {
	return q.businessID
}
