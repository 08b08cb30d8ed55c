package services

import (
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// PosterSummary is a business's view over the loads it posted.
type PosterSummary struct {
	Total         int
	Active        int
	AwaitingClose int
	Completed     int
	Cancelled     int
}

// PosterSummarizer counts a business's loads by lifecycle phase. Active means
// POSTED through IN_TRANSIT, awaiting close means DELIVERED, and completed means
// CLOSED, the poster having verified the delivery.
type PosterSummarizer struct{}

func NewPosterSummarizer() PosterSummarizer {
	return PosterSummarizer{}
}

func (PosterSummarizer) Summarize(businessID kernel.UUID, loads []*load.Load) PosterSummary {
	var summary PosterSummary
	for _, l := range loads {
		if l.Validate() != nil || !l.PostedBy().IsEqual(businessID) {
			continue
		}
		summary.Total++
		switch l.Status() {
		case load.Delivered:
			summary.AwaitingClose++
		case load.Closed:
			summary.Completed++
		case load.Cancelled:
			summary.Cancelled++
		default:
			summary.Active++
		}
	}
	return summary
}
