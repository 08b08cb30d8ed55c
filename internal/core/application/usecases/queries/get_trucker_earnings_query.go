package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrGetTruckerEarningsQueryIsNotConstructed = errors.New(
	"GetTruckerEarningsQuery must be created via NewGetTruckerEarningsQuery constructor",
)

// GetTruckerEarningsQuery projects the calling trucker's earnings from the store.
//
// Example:
//
//	query, _ := NewGetTruckerEarningsQuery(trucker)
//	earnings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s over %d trips\n", earnings.Total, earnings.CompletedTrips)
type GetTruckerEarningsQuery struct {
	truckerID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetTruckerEarningsQuery(actor kernel.Actor) (GetTruckerEarningsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetTruckerEarningsQuery{}, err
	}
	if !actor.IsTrucker() {
		return GetTruckerEarningsQuery{}, errs.NewActorIsNotAuthorizedError(actor.Role().String(), "read earnings")
	}

	return GetTruckerEarningsQuery{truckerID: actor.ID(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetTruckerEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckerEarningsQueryIsNotConstructed)
}

func (q GetTruckerEarningsQuery) TruckerID() kernel.UUID {
	return q.truckerID
}

// GetTruckerEarningsQueryResponse is the earnings read model. ActiveJob is nil
// when the trucker holds no MATCHED, ASSIGNED or IN_TRANSIT load.
type GetTruckerEarningsQueryResponse struct {
	Total          kernel.Money
	CompletedTrips int
	ActiveJob      *LoadView
}
