package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

var ErrClaimLoadCommandIsNotConstructed = errors.New(
	"ClaimLoadCommand must be created via NewClaimLoadCommand constructor",
)

// ClaimLoadCommand represents a trucker racing to take a posted load.
type ClaimLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

func NewClaimLoadCommand(loadID kernel.UUID, actor kernel.Actor) (ClaimLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), actor.Validate()); err != nil {
		return ClaimLoadCommand{}, err
	}

	return ClaimLoadCommand{
		loadID: loadID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimLoadCommand) Validate() error {
	return c.guard.Validate(ErrClaimLoadCommandIsNotConstructed)
}

func (c ClaimLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c ClaimLoadCommand) Actor() kernel.Actor {
	return c.actor
}
