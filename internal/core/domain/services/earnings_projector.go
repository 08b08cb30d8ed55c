package services

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// Earnings is a trucker's projection over the loads ever assigned to them.
type Earnings struct {
	// Total is the sum of prices of DELIVERED and CLOSED loads.
	Total kernel.Money

	// CompletedTrips counts the loads that make up Total.
	CompletedTrips int

	// ActiveJob is the most recently matched load in MATCHED, ASSIGNED or
	// IN_TRANSIT, or nil if the trucker is free.
	ActiveJob *load.Load
}

// EarningsProjector computes Earnings from loads.
//
// Business rules:
//   - only loads whose assignee is the trucker are considered
//   - a load counts once whatever its completed status, so closing a delivered
//     load does not count it again
//   - CANCELLED loads never count
//
// Example usage:
//
//	projector := services.NewEarningsProjector()
//	earnings := projector.Project(truckerID, loads)
//	fmt.Println(earnings.Total, earnings.CompletedTrips)
type EarningsProjector struct{}

func NewEarningsProjector() EarningsProjector {
	return EarningsProjector{}
}

// Project folds loads into the trucker's Earnings. Loads that fail validation or
// belong to other truckers are skipped, and duplicates of the same id are counted once.
func (EarningsProjector) Project(truckerID kernel.UUID, loads []*load.Load) Earnings {
	earnings := Earnings{Total: kernel.ZeroMoney()}
	seen := make(map[kernel.UUID]struct{}, len(loads))

	for _, l := range loads {
		if l.Validate() != nil || !l.IsAssignedTo(truckerID) {
			continue
		}
		if _, dup := seen[l.ID()]; dup {
			continue
		}
		seen[l.ID()] = struct{}{}

		switch {
		case l.Status().IsCompletedTrip():
			earnings.Total = earnings.Total.Add(l.Terms().Price())
			earnings.CompletedTrips++
		case l.Status().IsActiveJob():
			if earnings.ActiveJob == nil || matchedAt(l).After(matchedAt(earnings.ActiveJob)) {
				earnings.ActiveJob = l
			}
		}
	}

	return earnings
}

func matchedAt(l *load.Load) time.Time {
	at, _ := l.Timeline().At(load.Matched)
	return at
}
