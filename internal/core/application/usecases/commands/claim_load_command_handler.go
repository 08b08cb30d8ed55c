package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"
)

// ErrTruckerHasActiveJob is returned when a trucker holding a MATCHED, ASSIGNED
// or IN_TRANSIT load tries to claim another one. It is a status error.
var ErrTruckerHasActiveJob = errs.NewStatusTransitionIsInvalidErrorWithCause(
	load.Posted.String(),
	load.Claim.String(),
	errs.ErrAssigneeHasActiveJob,
)

// ClaimLoadCommandHandler resolves claims: POSTED to MATCHED with the claimant
// recorded as assignee.
//
// The read and the write are joined by the store's Claim, a swap against POSTED
// that also requires the claimant to be idle. Among concurrent claimants of one
// load exactly one wins, and a trucker racing for several loads ends up holding
// at most one. Every loser, and every claim on a load that already left POSTED,
// gets a ConcurrencyConflictError and must re-list to find another load.
//
// Example:
//
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // load no longer available
//	case errors.Is(err, ErrTruckerHasActiveJob):
//	    // finish the current job first
//	}
type ClaimLoadCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewClaimLoadCommandHandler(uowFactory UoWFactory, clock Clock, logger *slog.Logger) ClaimLoadCommandHandler {
	return ClaimLoadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "ClaimLoadCommandHandler"),
	}
}

// Handle runs the checks in order: the actor is a trucker, the load exists and
// is still POSTED, then the store's atomic claim, which fails with a conflict if
// another claim won and with ErrTruckerHasActiveJob if the trucker is busy.
func (h ClaimLoadCommandHandler) Handle(ctx context.Context, cmd ClaimLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.IsTrucker() {
		return nil, errs.NewActorIsNotAuthorizedError(actor.Role().String(), load.Claim.String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadRepository()

	l, err := repo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if l.Status() != load.Posted {
		return nil, h.conflict(ctx, cmd, l.Status())
	}

	from, err := l.Apply(actor, load.Claim, h.clock())
	if err != nil {
		return nil, err
	}

	err = repo.Claim(ctx, l)
	switch {
	case errors.Is(err, errs.ErrPreconditionFailed):
		return nil, h.conflict(ctx, cmd, from)
	case errors.Is(err, errs.ErrAssigneeHasActiveJob):
		return nil, ErrTruckerHasActiveJob
	case err != nil:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load claimed", "load_id", l.ID().String(), "trucker", actor.ID().String())
	return l, nil
}

func (h ClaimLoadCommandHandler) conflict(ctx context.Context, cmd ClaimLoadCommand, seen load.Status) error {
	h.logger.InfoContext(ctx, "claim lost",
		"load_id", cmd.LoadID().String(),
		"trucker", cmd.Actor().ID().String(),
		"status", seen.String(),
	)
	return errs.NewConcurrencyConflictError("load", cmd.LoadID().String())
}
