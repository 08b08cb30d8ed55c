package queries

import (
	"context"

	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
)

// GetTruckerEarningsQueryHandler recomputes earnings from the trucker's loads on
// every call. There is no stored counter to drift from the store.
type GetTruckerEarningsQueryHandler struct {
	loads     ports.LoadReader
	projector services.EarningsProjector
}

func NewGetTruckerEarningsQueryHandler(
	loads ports.LoadReader,
	projector services.EarningsProjector,
) GetTruckerEarningsQueryHandler {
	return GetTruckerEarningsQueryHandler{loads: loads, projector: projector}
}

func (h GetTruckerEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetTruckerEarningsQuery,
) (GetTruckerEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTruckerEarningsQueryResponse{}, err
	}

	loads, err := h.loads.ListByAssignee(ctx, query.TruckerID())
	if err != nil {
		return GetTruckerEarningsQueryResponse{}, err
	}

	earnings := h.projector.Project(query.TruckerID(), loads)

	response := GetTruckerEarningsQueryResponse{
		Total:          earnings.Total,
		CompletedTrips: earnings.CompletedTrips,
	}
	if earnings.ActiveJob != nil {
		view := NewLoadView(earnings.ActiveJob)
		response.ActiveJob = &view
	}
	return response, nil
}
