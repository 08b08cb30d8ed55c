package queries

import (
	"context"

	"loadboard/internal/core/ports"
)

type ListAvailableLoadsQueryHandler struct {
	loads ports.LoadReader
}

func NewListAvailableLoadsQueryHandler(loads ports.LoadReader) ListAvailableLoadsQueryHandler {
	return ListAvailableLoadsQueryHandler{loads: loads}
}

func (h ListAvailableLoadsQueryHandler) Handle(ctx context.Context, query ListAvailableLoadsQuery) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.loads.ListAvailable(ctx, query.Capability())
	if err != nil {
		return nil, err
	}
	return newLoadViews(loads), nil
}
