// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read from the load store on every call and return plain read models;
// nothing here is cached, so a result is stale as soon as a command succeeds.
package queries

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

// LoadView is the read model of a single load shared by every query.
//
// Timestamps are nil for statuses the load never entered.
type LoadView struct {
	ID          kernel.UUID
	PostedBy    kernel.UUID
	Origin      string
	Destination string
	CargoType   string
	VehicleType string
	Weight      decimal.Decimal
	Price       kernel.Money
	PickupDate  time.Time
	Status      load.Status
	AssignedTo  *kernel.UUID

	PostedAt    time.Time
	MatchedAt   *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	ClosedAt    *time.Time
	CancelledAt *time.Time
}

// NewLoadView copies an aggregate into its read model.
func NewLoadView(l *load.Load) LoadView {
	terms := l.Terms()
	timeline := l.Timeline()

	return LoadView{
		ID:          l.ID(),
		PostedBy:    l.PostedBy(),
		Origin:      terms.Origin(),
		Destination: terms.Destination(),
		CargoType:   terms.CargoType(),
		VehicleType: terms.VehicleType(),
		Weight:      terms.Weight(),
		Price:       terms.Price(),
		PickupDate:  terms.PickupDate(),
		Status:      l.Status(),
		AssignedTo:  l.AssignedTo(),

		PostedAt:    timeline.PostedAt(),
		MatchedAt:   stampOf(timeline, load.Matched),
		AssignedAt:  stampOf(timeline, load.Assigned),
		PickedUpAt:  stampOf(timeline, load.InTransit),
		DeliveredAt: stampOf(timeline, load.Delivered),
		ClosedAt:    stampOf(timeline, load.Closed),
		CancelledAt: stampOf(timeline, load.Cancelled),
	}
}

func newLoadViews(loads []*load.Load) []LoadView {
	views := make([]LoadView, 0, len(loads))
	for _, l := range loads {
		views = append(views, NewLoadView(l))
	}
	return views
}

func stampOf(timeline load.Timeline, status load.Status) *time.Time {
	at, ok := timeline.At(status)
	if !ok {
		return nil
	}
	return &at
}
