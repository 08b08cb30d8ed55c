package kernel

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the kind of party issuing a command. Profiles behind a role live in an
// external service; the core only needs the role and the identity.
type Role int

const (
	RoleUnknown Role = iota
	RoleBusiness
	RoleTrucker
)

func (r Role) String() string {
	switch r {
	case RoleBusiness:
		return "business"
	case RoleTrucker:
		return "trucker"
	case RoleUnknown:
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleBusiness && r != RoleTrucker {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole converts the wire name of a role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "business":
		return RoleBusiness, nil
	case "trucker":
		return RoleTrucker, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Actor is the authenticated caller of a command: a role plus an opaque identity
// yielded by the authentication collaborator.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor validates both parts and returns the actor.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewActor is NewActor for fixtures; it panics on invalid input.
func MustNewActor(id UUID, role Role) Actor {
	a, err := NewActor(id, role)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsBusiness() bool {
	return a.role == RoleBusiness
}

func (a Actor) IsTrucker() bool {
	return a.role == RoleTrucker
}

// Is reports whether the actor has the given role and identity.
func (a Actor) Is(role Role, id UUID) bool {
	return a.role == role && a.id.IsEqual(id)
}

func (a Actor) String() string {
	return a.role.String() + ":" + a.id.String()
}
