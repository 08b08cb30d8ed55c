package queries

import (
	"context"

	"loadboard/internal/core/ports"
)

type ListPostedLoadsQueryHandler struct {
	loads ports.LoadReader
}

func NewListPostedLoadsQueryHandler(loads ports.LoadReader) ListPostedLoadsQueryHandler {
	return ListPostedLoadsQueryHandler{loads: loads}
}

// Handle returns the business's loads, newest first.
func (h ListPostedLoadsQueryHandler) Handle(ctx context.Context, query ListPostedLoadsQuery) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.loads.ListByPoster(ctx, query.BusinessID())
	if err != nil {
		return nil, err
	}
	return newLoadViews(loads), nil
}
