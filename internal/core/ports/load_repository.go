package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// LoadReader is the read side of the load store. Every list is ordered newest
// posting first. Results are copies; mutating them never changes the store.
type LoadReader interface {
	// Get retrieves a load by its identifier.
	// Returns errs.ObjectNotFoundError if no such load exists.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// ListByPoster returns every load posted by the business, any status.
	ListByPoster(ctx context.Context, businessID kernel.UUID) ([]*load.Load, error)

	// ListAvailable returns the POSTED loads that the capability accepts.
	ListAvailable(ctx context.Context, capability load.Capability) ([]*load.Load, error)

	// ListByAssignee returns every load ever assigned to the trucker that still
	// records them, any status.
	ListByAssignee(ctx context.Context, truckerID kernel.UUID) ([]*load.Load, error)

	// HasActiveByAssignee reports whether the trucker holds a MATCHED, ASSIGNED
	// or IN_TRANSIT load.
	HasActiveByAssignee(ctx context.Context, truckerID kernel.UUID) (bool, error)

	// CountByStatus returns the number of loads per status. Statuses with no
	// loads are present with a zero count.
	CountByStatus(ctx context.Context) (map[load.Status]int, error)
}

// LoadRepository is the persistence contract for Load aggregates.
//
// The only way to change a stored load is CompareAndSwap: a conditional update
// that succeeds only if the stored status still equals the expected one. The
// comparison and the write are a single atomic step.
type LoadRepository interface {
	LoadReader

	// Add persists a newly posted load.
	Add(ctx context.Context, aggregate *load.Load) error

	// CompareAndSwap writes the aggregate's status, assignee and timeline if the
	// stored status equals expected.
	//
	// Returns:
	//   - errs.ObjectNotFoundError if the load does not exist
	//   - errs.ErrPreconditionFailed if the stored status differs from expected
	CompareAndSwap(ctx context.Context, aggregate *load.Load, expected load.Status) error

	// Claim writes a freshly claimed aggregate if the stored load is still POSTED
	// and the aggregate's assignee holds no MATCHED, ASSIGNED or IN_TRANSIT load.
	// Both conditions and the write are one atomic step.
	//
	// Returns:
	//   - errs.ObjectNotFoundError if the load does not exist
	//   - errs.ErrPreconditionFailed if the stored load is no longer POSTED
	//   - errs.ErrAssigneeHasActiveJob if the assignee already works another load
	Claim(ctx context.Context, aggregate *load.Load) error
}
