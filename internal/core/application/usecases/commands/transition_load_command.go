package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

var ErrTransitionLoadCommandIsNotConstructed = errors.New(
	"TransitionLoadCommand must be created via NewTransitionLoadCommand constructor",
)

// TransitionLoadCommand is any lifecycle action issued against an existing load.
// Confirm carries no trucker: the load's own assignee is the one confirmed.
//
// Example:
//
//	cmd, err := NewTransitionLoadCommand(loadID, trucker, load.Pickup)
//	if err != nil {
//	    return err
//	}
//	updated, err := engine.Handle(ctx, cmd)
type TransitionLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.Actor
	action load.Action

	guard guard.ConstructorGuard
}

func NewTransitionLoadCommand(loadID kernel.UUID, actor kernel.Actor, action load.Action) (TransitionLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), actor.Validate(), action.Validate()); err != nil {
		return TransitionLoadCommand{}, err
	}

	return TransitionLoadCommand{
		loadID: loadID,
		actor:  actor,
		action: action,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionLoadCommand) Validate() error {
	return c.guard.Validate(ErrTransitionLoadCommandIsNotConstructed)
}

func (c TransitionLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c TransitionLoadCommand) Actor() kernel.Actor {
	return c.actor
}

func (c TransitionLoadCommand) Action() load.Action {
	return c.action
}
