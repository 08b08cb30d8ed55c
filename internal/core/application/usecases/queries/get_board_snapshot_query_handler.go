package queries

import (
	"context"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
)

type GetBoardSnapshotQueryHandler struct {
	loads ports.LoadReader
}

func NewGetBoardSnapshotQueryHandler(loads ports.LoadReader) GetBoardSnapshotQueryHandler {
	return GetBoardSnapshotQueryHandler{loads: loads}
}

func (h GetBoardSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetBoardSnapshotQuery,
) (GetBoardSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardSnapshotQueryResponse{}, err
	}

	counts, err := h.loads.CountByStatus(ctx)
	if err != nil {
		return GetBoardSnapshotQueryResponse{}, err
	}

	var response GetBoardSnapshotQueryResponse
	for _, status := range load.AllStatuses() {
		n := counts[status]
		response.Counts = append(response.Counts, StatusCount{Status: status, Count: n})
		response.Total += n
	}
	return response, nil
}
