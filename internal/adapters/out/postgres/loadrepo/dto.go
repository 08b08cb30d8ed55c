// Package loadrepo provides the GORM repository for the Load aggregate and the
// mapping between the aggregate and its table row.
package loadrepo

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO is one row of the loads table. Terms and timeline are embedded so a
// load is always read and written as a single record.
type LoadDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	PostedBy   uuid.UUID   `gorm:"type:uuid;not null;index"`
	AssignedTo *uuid.UUID  `gorm:"type:uuid;index"`
	Status     int         `gorm:"not null;index"`
	Terms      TermsDTO    `gorm:"embedded"`
	Timeline   TimelineDTO `gorm:"embedded"`
}

// TableName overrides GORM's default naming convention to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// TermsDTO holds the shipment terms. Weight and price are exact numerics.
type TermsDTO struct {
	Origin      string          `gorm:"not null"`
	Destination string          `gorm:"not null"`
	CargoType   string          `gorm:"not null"`
	VehicleType string          `gorm:"not null;index"`
	Weight      decimal.Decimal `gorm:"type:numeric;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PickupDate  time.Time       `gorm:"type:date;not null"`
}

// TimelineDTO holds one nullable column per status a load can enter.
type TimelineDTO struct {
	PostedAt    time.Time `gorm:"not null;index"`
	MatchedAt   *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	ClosedAt    *time.Time
	CancelledAt *time.Time
}

func (t TimelineDTO) columns() map[load.Status]*time.Time {
	return map[load.Status]*time.Time{
		load.Matched:   t.MatchedAt,
		load.Assigned:  t.AssignedAt,
		load.InTransit: t.PickedUpAt,
		load.Delivered: t.DeliveredAt,
		load.Closed:    t.ClosedAt,
		load.Cancelled: t.CancelledAt,
	}
}

// mutableColumns are the columns a compare-and-swap may write.
func (d LoadDTO) mutableColumns() map[string]any {
	return map[string]any{
		"status":       d.Status,
		"assigned_to":  d.AssignedTo,
		"matched_at":   d.Timeline.MatchedAt,
		"assigned_at":  d.Timeline.AssignedAt,
		"picked_up_at": d.Timeline.PickedUpAt,
		"delivered_at": d.Timeline.DeliveredAt,
		"closed_at":    d.Timeline.ClosedAt,
		"cancelled_at": d.Timeline.CancelledAt,
	}
}

func fromDomain(l *load.Load) LoadDTO {
	var assignedTo *uuid.UUID
	if id := l.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	terms := l.Terms()
	tl := l.Timeline()
	stamp := func(s load.Status) *time.Time {
		if at, ok := tl.At(s); ok {
			return &at
		}
		return nil
	}

	return LoadDTO{
		ID:         l.ID().Bytes(),
		PostedBy:   l.PostedBy().Bytes(),
		AssignedTo: assignedTo,
		Status:     int(l.Status()),
		Terms: TermsDTO{
			Origin:      terms.Origin(),
			Destination: terms.Destination(),
			CargoType:   terms.CargoType(),
			VehicleType: terms.VehicleType(),
			Weight:      terms.Weight(),
			Price:       terms.Price().Decimal(),
			PickupDate:  terms.PickupDate(),
		},
		Timeline: TimelineDTO{
			PostedAt:    tl.PostedAt(),
			MatchedAt:   stamp(load.Matched),
			AssignedAt:  stamp(load.Assigned),
			PickedUpAt:  stamp(load.InTransit),
			DeliveredAt: stamp(load.Delivered),
			ClosedAt:    stamp(load.Closed),
			CancelledAt: stamp(load.Cancelled),
		},
	}
}

// toDomain rebuilds the aggregate through RestoreLoad, so a row that breaks an
// invariant is reported instead of loaded.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	postedBy, err := kernel.UUIDFromBytes(dto.PostedBy[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assigneeErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assignedTo = &aID
	}

	price, err := kernel.NewMoney(dto.Terms.Price)
	if err != nil {
		return nil, err
	}

	terms, err := load.NewTerms(
		dto.Terms.Origin,
		dto.Terms.Destination,
		dto.Terms.CargoType,
		dto.Terms.VehicleType,
		dto.Terms.Weight,
		price,
		dto.Terms.PickupDate,
	)
	if err != nil {
		return nil, err
	}

	stamps := map[load.Status]time.Time{load.Posted: dto.Timeline.PostedAt}
	for status, at := range dto.Timeline.columns() {
		if at != nil {
			stamps[status] = *at
		}
	}
	timeline, err := load.RestoreTimeline(stamps)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, postedBy, terms, load.Status(dto.Status), assignedTo, timeline)
}
