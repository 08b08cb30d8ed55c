package queries

import (
	"context"

	"loadboard/internal/core/ports"
)

type GetLoadQueryHandler struct {
	loads ports.LoadReader
}

func NewGetLoadQueryHandler(loads ports.LoadReader) GetLoadQueryHandler {
	return GetLoadQueryHandler{loads: loads}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadView, error) {
	if err := query.Validate(); err != nil {
		return LoadView{}, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return LoadView{}, err
	}
	return NewLoadView(l), nil
}
