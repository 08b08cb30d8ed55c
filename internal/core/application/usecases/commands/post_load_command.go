package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

var ErrPostLoadCommandIsNotConstructed = errors.New(
	"PostLoadCommand must be created via NewPostLoadCommand constructor",
)

// PostLoadCommand represents a business posting a new load to the board.
// The load id is chosen by the caller so that a retried request is idempotent
// at the store (a second Add with the same id is rejected).
//
// Example:
//
//	terms, err := load.NewTerms("Mumbai", "Delhi", "Electronics", "Semi-Truck", weight, price, pickup)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewPostLoadCommand(kernel.NewUUID(), business, terms)
//	if err != nil {
//	    return err
//	}
//	posted, err := handler.Handle(ctx, cmd)
type PostLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.Actor
	terms  load.Terms

	guard guard.ConstructorGuard
}

// NewPostLoadCommand validates that every part was itself properly constructed.
func NewPostLoadCommand(loadID kernel.UUID, actor kernel.Actor, terms load.Terms) (PostLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), actor.Validate(), terms.Validate()); err != nil {
		return PostLoadCommand{}, err
	}

	return PostLoadCommand{
		loadID: loadID,
		actor:  actor,
		terms:  terms,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PostLoadCommand) Validate() error {
	return c.guard.Validate(ErrPostLoadCommandIsNotConstructed)
}

func (c PostLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c PostLoadCommand) Actor() kernel.Actor {
	return c.actor
}

func (c PostLoadCommand) Terms() load.Terms {
	return c.terms
}
