package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
)

// PostLoadCommandHandler creates loads in POSTED status.
//
// Example:
//
//	handler := NewPostLoadCommandHandler(uowFactory, SystemClock, logger)
//	posted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrActorIsNotAuthorized) {
//	    // only businesses post loads
//	}
type PostLoadCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewPostLoadCommandHandler(uowFactory UoWFactory, clock Clock, logger *slog.Logger) PostLoadCommandHandler {
	return PostLoadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "PostLoadCommandHandler"),
	}
}

// Handle checks that the actor is a business, builds the load and stores it.
func (h PostLoadCommandHandler) Handle(ctx context.Context, cmd PostLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	posted, err := load.NewLoad(cmd.LoadID(), cmd.Actor(), cmd.Terms(), h.clock())
	if err != nil {
		h.logger.WarnContext(ctx, "post rejected", "load_id", cmd.LoadID().String(), "actor", cmd.Actor().String(), "error", err)
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, posted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load posted",
		"load_id", posted.ID().String(),
		"posted_by", posted.PostedBy().String(),
		"route", posted.Terms().Origin()+" -> "+posted.Terms().Destination(),
	)
	return posted, nil
}
