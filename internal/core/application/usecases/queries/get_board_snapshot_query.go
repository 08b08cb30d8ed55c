package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

var ErrGetBoardSnapshotQueryIsNotConstructed = errors.New(
	"GetBoardSnapshotQuery must be created via NewGetBoardSnapshotQuery constructor",
)

// GetBoardSnapshotQuery counts every load on the board by status. It is an
// operator query with no actor.
type GetBoardSnapshotQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBoardSnapshotQuery() GetBoardSnapshotQuery {
	return GetBoardSnapshotQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBoardSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardSnapshotQueryIsNotConstructed)
}

// StatusCount is one row of the snapshot.
type StatusCount struct {
	Status load.Status
	Count  int
}

// GetBoardSnapshotQueryResponse lists every status in lifecycle order, including
// those with no loads.
type GetBoardSnapshotQueryResponse struct {
	Counts []StatusCount
	Total  int
}
