package queries

import (
	"context"

	"loadboard/internal/core/ports"
)

type ListAssignedLoadsQueryHandler struct {
	loads ports.LoadReader
}

func NewListAssignedLoadsQueryHandler(loads ports.LoadReader) ListAssignedLoadsQueryHandler {
	return ListAssignedLoadsQueryHandler{loads: loads}
}

func (h ListAssignedLoadsQueryHandler) Handle(ctx context.Context, query ListAssignedLoadsQuery) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.loads.ListByAssignee(ctx, query.TruckerID())
	if err != nil {
		return nil, err
	}
	return newLoadViews(loads), nil
}
