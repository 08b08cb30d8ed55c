package load

import (
	"fmt"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
)

// Action is a lifecycle command issued against an existing load.
type Action int

const (
	ActionUnknown Action = iota
	Claim
	Confirm
	Pickup
	Deliver
	Close
	Cancel
)

// Party names whose identity an action is bound to.
type Party int

const (
	// AnyTrucker allows every authenticated trucker.
	AnyTrucker Party = iota + 1
	// Poster allows only the business that posted the load.
	Poster
	// Assignee allows only the trucker recorded as the load's assignee.
	Assignee
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		Claim:   "claim",
		Confirm: "confirm",
		Pickup:  "pickup",
		Deliver: "deliver",
		Close:   "close",
		Cancel:  "cancel",
	}
}

// AllActions lists every valid action.
func AllActions() []Action {
	return []Action{Claim, Confirm, Pickup, Deliver, Close, Cancel}
}

// ParseAction converts a lower-case command name such as "pickup" into an Action.
func ParseAction(s string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for action, name := range getActionStrings() {
		if name == normalized {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a valid action", s))
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// Party returns whose identity the action is bound to.
func (a Action) Party() Party {
	switch a {
	case Claim:
		return AnyTrucker
	case Confirm, Close, Cancel:
		return Poster
	case Pickup, Deliver:
		return Assignee
	case ActionUnknown:
	}
	return 0
}

// RequiredRole returns the role an actor must hold to issue the action.
func (a Action) RequiredRole() kernel.Role {
	switch a.Party() {
	case AnyTrucker, Assignee:
		return kernel.RoleTrucker
	case Poster:
		return kernel.RoleBusiness
	}
	return kernel.RoleUnknown
}
