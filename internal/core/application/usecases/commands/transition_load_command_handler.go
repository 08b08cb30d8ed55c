package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"
)

// TransitionLoadCommandHandler is the single entry point for lifecycle actions.
// Claims go to the ClaimLoadCommandHandler; every other action is read, applied
// on the aggregate (authorization, then the transition graph) and written back
// with a compare-and-swap against the status it was read in.
//
// A failed swap means a concurrent or duplicate command moved the load first.
// It is reported as a status error wrapping errs.ErrPreconditionFailed in its
// message, and nothing is written.
type TransitionLoadCommandHandler struct {
	uowFactory UoWFactory
	claims     ClaimLoadCommandHandler
	clock      Clock
	logger     *slog.Logger
}

func NewTransitionLoadCommandHandler(
	uowFactory UoWFactory,
	claims ClaimLoadCommandHandler,
	clock Clock,
	logger *slog.Logger,
) TransitionLoadCommandHandler {
	return TransitionLoadCommandHandler{
		uowFactory: uowFactory,
		claims:     claims,
		clock:      clock,
		logger:     logger.With("component", "TransitionLoadCommandHandler"),
	}
}

func (h TransitionLoadCommandHandler) Handle(ctx context.Context, cmd TransitionLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Action() == load.Claim {
		claim, err := NewClaimLoadCommand(cmd.LoadID(), cmd.Actor())
		if err != nil {
			return nil, err
		}
		return h.claims.Handle(ctx, claim)
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

	from, err := l.Apply(cmd.Actor(), cmd.Action(), h.clock())
	if err != nil {
		h.reject(ctx, cmd, err)
		return nil, err
	}

	err = repo.CompareAndSwap(ctx, l, from)
	if errors.Is(err, errs.ErrPreconditionFailed) {
		err = errs.NewStatusTransitionIsInvalidErrorWithCause(from.String(), cmd.Action().String(), err)
		h.reject(ctx, cmd, err)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load transitioned",
		"load_id", l.ID().String(),
		"action", cmd.Action().String(),
		"from", from.String(),
		"to", l.Status().String(),
		"actor", cmd.Actor().String(),
	)
	return l, nil
}

func (h TransitionLoadCommandHandler) reject(ctx context.Context, cmd TransitionLoadCommand, err error) {
	h.logger.WarnContext(ctx, "transition rejected",
		"load_id", cmd.LoadID().String(),
		"action", cmd.Action().String(),
		"actor", cmd.Actor().String(),
		"error", err,
	)
}
