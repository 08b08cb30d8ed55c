package queries

import (
	"context"

	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
)

type GetPosterSummaryQueryHandler struct {
	loads      ports.LoadReader
	summarizer services.PosterSummarizer
}

func NewGetPosterSummaryQueryHandler(
	loads ports.LoadReader,
	summarizer services.PosterSummarizer,
) GetPosterSummaryQueryHandler {
	return GetPosterSummaryQueryHandler{loads: loads, summarizer: summarizer}
}

func (h GetPosterSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPosterSummaryQuery,
) (services.PosterSummary, error) {
	if err := query.Validate(); err != nil {
		return services.PosterSummary{}, err
	}

	loads, err := h.loads.ListByPoster(ctx, query.BusinessID())
	if err != nil {
		return services.PosterSummary{}, err
	}
	return h.summarizer.Summarize(query.BusinessID(), loads), nil
}
