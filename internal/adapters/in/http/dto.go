package http

import (
	"time"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

// PostLoadRequest is the body of POST /api/v1/loads. Weight and price accept
// JSON numbers or decimal strings; their ranges are checked by the domain.
type PostLoadRequest struct {
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	CargoType   string          `json:"cargoType" validate:"required"`
	VehicleType string          `json:"vehicleType" validate:"required"`
	Weight      decimal.Decimal `json:"weight"`
	Price       decimal.Decimal `json:"price"`
	PickupDate  string          `json:"pickupDate" validate:"required,datetime=2006-01-02"`
}

func (r PostLoadRequest) terms() (load.Terms, error) {
	pickup, err := time.Parse(dateLayout, r.PickupDate)
	if err != nil {
		return load.Terms{}, errs.NewValueIsInvalidErrorWithCause("pickupDate", err)
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return load.Terms{}, err
	}
	return load.NewTerms(r.Origin, r.Destination, r.CargoType, r.VehicleType, r.Weight, price, pickup)
}

type TimelineResponse struct {
	PostedAt    time.Time  `json:"postedAt"`
	MatchedAt   *time.Time `json:"matchedAt,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type LoadResponse struct {
	ID          uuid.UUID        `json:"id"`
	PostedBy    uuid.UUID        `json:"postedBy"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	CargoType   string           `json:"cargoType"`
	VehicleType string           `json:"vehicleType"`
	Weight      string           `json:"weight"`
	Price       string           `json:"price"`
	PickupDate  string           `json:"pickupDate"`
	Status      string           `json:"status"`
	AssignedTo  *uuid.UUID       `json:"assignedTo,omitempty"`
	Timeline    TimelineResponse `json:"timeline"`
}

func newLoadResponse(v queries.LoadView) LoadResponse {
	response := LoadResponse{
		ID:          v.ID.Bytes(),
		PostedBy:    v.PostedBy.Bytes(),
		Origin:      v.Origin,
		Destination: v.Destination,
		CargoType:   v.CargoType,
		VehicleType: v.VehicleType,
		Weight:      v.Weight.String(),
		Price:       v.Price.String(),
		PickupDate:  v.PickupDate.Format(dateLayout),
		Status:      v.Status.String(),
		Timeline: TimelineResponse{
			PostedAt:    v.PostedAt,
			MatchedAt:   v.MatchedAt,
			AssignedAt:  v.AssignedAt,
			PickedUpAt:  v.PickedUpAt,
			DeliveredAt: v.DeliveredAt,
			ClosedAt:    v.ClosedAt,
			CancelledAt: v.CancelledAt,
		},
	}
	if v.AssignedTo != nil {
		id := v.AssignedTo.Bytes()
		response.AssignedTo = &id
	}
	return response
}

func newLoadResponses(views []queries.LoadView) []LoadResponse {
	responses := make([]LoadResponse, len(views))
	for i, v := range views {
		responses[i] = newLoadResponse(v)
	}
	return responses
}

type EarningsResponse struct {
	TotalEarnings  string        `json:"totalEarnings"`
	CompletedTrips int           `json:"completedTrips"`
	ActiveJob      *LoadResponse `json:"activeJob"`
}

func newEarningsResponse(r queries.GetTruckerEarningsQueryResponse) EarningsResponse {
	response := EarningsResponse{
		TotalEarnings:  r.Total.String(),
		CompletedTrips: r.CompletedTrips,
	}
	if r.ActiveJob != nil {
		job := newLoadResponse(*r.ActiveJob)
		response.ActiveJob = &job
	}
	return response
}

type SummaryResponse struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	AwaitingClose int `json:"awaitingClose"`
	Completed     int `json:"completed"`
	Cancelled     int `json:"cancelled"`
}

func newSummaryResponse(s services.PosterSummary) SummaryResponse {
	return SummaryResponse{
		Total:         s.Total,
		Active:        s.Active,
		AwaitingClose: s.AwaitingClose,
		Completed:     s.Completed,
		Cancelled:     s.Cancelled,
	}
}
