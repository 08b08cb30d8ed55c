package load

import (
	"errors"
	"fmt"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
)

// ErrLoadIsNotConstructed is returned when a Load was created neither through
// NewLoad nor through RestoreLoad.
var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

// Load is a shipment posted by a business. It is the aggregate root that manages
// the lifecycle from posting through claim, confirmation, pickup and delivery to
// close or cancellation.
//
// Load follows these invariants:
//   - id and postedBy are valid and never change
//   - terms are fixed at posting time
//   - assignedTo is present if and only if status requires an assignee
//   - status only moves forward along the transition graph (see Status)
//   - every status entered has exactly one timestamp and the timestamps never decrease
//
// The struct uses private fields; state changes go through Apply or the named
// transition methods, which check authorization before the status precondition.
type Load struct {
	// id is the unique identifier of the load
	id kernel.UUID

	// postedBy is the identity of the business that posted the load
	postedBy kernel.UUID

	// terms are the shipment terms
	terms Terms

	// status is the current lifecycle state
	status Status

	// assignedTo is the trucker who won the claim (nil until then)
	assignedTo *kernel.UUID

	// timeline holds one stamp per status entered
	timeline Timeline

	// isConstructed ensures the load was created via NewLoad or RestoreLoad
	isConstructed bool
}

// NewLoad posts a new load on behalf of poster.
//
// Parameters:
//   - id: identifier for the load (must be a valid UUID)
//   - poster: the calling actor; must be a business
//   - terms: validated shipment terms
//   - now: posting time, recorded as the POSTED stamp
//
// Returns:
//   - *Load in POSTED status with no assignee
//   - ActorIsNotAuthorizedError if poster is not a business (checked first)
//   - validation errors for an invalid id or terms
//
// Example:
//
//	terms, _ := load.NewTerms("Mumbai", "Delhi", "Electronics", "Semi-Truck",
//	    decimal.NewFromInt(5), kernel.MustMoney("10000"), pickup)
//	l, err := load.NewLoad(kernel.NewUUID(), business, terms, time.Now())
func NewLoad(id kernel.UUID, poster kernel.Actor, terms Terms, now time.Time) (*Load, error) {
	if err := poster.Validate(); err != nil {
		return nil, err
	}
	if !poster.IsBusiness() {
		return nil, errs.NewActorIsNotAuthorizedError(poster.Role().String(), "post")
	}
	if err := errors.Join(id.Validate(), terms.Validate()); err != nil {
		return nil, err
	}

	l := &Load{
		id:            id,
		postedBy:      poster.ID(),
		terms:         terms,
		status:        Posted,
		isConstructed: true,
	}
	if err := l.timeline.stamp(Posted, now); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad rebuilds a load from persistence and re-checks every invariant that
// can be verified from a single record.
func RestoreLoad(
	id kernel.UUID,
	postedBy kernel.UUID,
	terms Terms,
	status Status,
	assignedTo *kernel.UUID,
	timeline Timeline,
) (*Load, error) {
	if err := errors.Join(
		id.Validate(),
		postedBy.Validate(),
		terms.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedTo != nil {
		if err := assignedTo.Validate(); err != nil {
			return nil, err
		}
	}

	if err := validateAssignee(status, assignedTo != nil); err != nil {
		return nil, err
	}

	if !timeline.Has(Posted) || !timeline.Has(status) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"timeline",
			fmt.Errorf("%s load must have POSTED and %s stamps", status, status),
		)
	}

	var assignee *kernel.UUID
	if assignedTo != nil {
		a := *assignedTo
		assignee = &a
	}

	return &Load{
		id:            id,
		postedBy:      postedBy,
		terms:         terms,
		status:        status,
		assignedTo:    assignee,
		timeline:      timeline,
		isConstructed: true,
	}, nil
}

// Validate ensures the load was built by NewLoad or RestoreLoad.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by identifier.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

// PostedBy returns the identity of the posting business.
func (l *Load) PostedBy() kernel.UUID {
	return l.postedBy
}

func (l *Load) Terms() Terms {
	return l.terms
}

func (l *Load) Status() Status {
	return l.status
}

// AssignedTo returns a copy of the assignee's identity, or nil if none.
func (l *Load) AssignedTo() *kernel.UUID {
	if l.assignedTo == nil {
		return nil
	}
	a := *l.assignedTo
	return &a
}

// IsAssignedTo reports whether truckerID is the load's assignee.
func (l *Load) IsAssignedTo(truckerID kernel.UUID) bool {
	return l.assignedTo != nil && l.assignedTo.IsEqual(truckerID)
}

func (l *Load) Timeline() Timeline {
	return l.timeline
}

// IsAvailableFor reports whether the load is open for claims and fits the capability.
func (l *Load) IsAvailableFor(c Capability) bool {
	return l.status == Posted && c.Accepts(l.terms)
}

// Authorize checks that actor may issue action against this load. It looks only at
// roles and identities, never at the status, so an unauthorized caller cannot learn
// the load's state from the error.
//
// Rules:
//   - claim: any trucker
//   - confirm, close, cancel: the business that posted the load
//   - pickup, deliver: the trucker recorded as assignee
func (l *Load) Authorize(actor kernel.Actor, action Action) error {
	if err := errors.Join(actor.Validate(), action.Validate()); err != nil {
		return err
	}

	var allowed bool
	switch action.Party() {
	case AnyTrucker:
		allowed = actor.IsTrucker()
	case Poster:
		allowed = actor.Is(kernel.RoleBusiness, l.postedBy)
	case Assignee:
		allowed = l.assignedTo != nil && actor.Is(kernel.RoleTrucker, *l.assignedTo)
	}

	if !allowed {
		return errs.NewActorIsNotAuthorizedError(actor.Role().String(), action.String())
	}
	return nil
}

// Apply performs action on behalf of actor at time now.
//
// Checks run in a fixed order: authorization, then the transition graph. On any
// error the load is left untouched. On success the target status is stamped; claim
// records the actor as assignee and cancel clears it.
//
// Returns the status the load was in before the transition, which callers use as
// the expected value of the store's compare-and-swap.
func (l *Load) Apply(actor kernel.Actor, action Action, now time.Time) (Status, error) {
	if err := l.Validate(); err != nil {
		return Unknown, err
	}
	if err := l.Authorize(actor, action); err != nil {
		return Unknown, err
	}

	from := l.status
	to, err := from.Next(action)
	if err != nil {
		return Unknown, err
	}

	timeline := l.timeline
	if err = timeline.stamp(to, now); err != nil {
		return Unknown, err
	}

	switch {
	case action == Claim:
		id := actor.ID()
		l.assignedTo = &id
	case !to.RequiresAssignee():
		l.assignedTo = nil
	}
	l.status = to
	l.timeline = timeline

	return from, nil
}

// Claim records trucker as the assignee and moves POSTED to MATCHED.
func (l *Load) Claim(trucker kernel.Actor, now time.Time) error {
	_, err := l.Apply(trucker, Claim, now)
	return err
}

// Confirm accepts the matched trucker, moving MATCHED to ASSIGNED. The trucker is
// read from the load itself.
func (l *Load) Confirm(business kernel.Actor, now time.Time) error {
	_, err := l.Apply(business, Confirm, now)
	return err
}

// Pickup moves ASSIGNED to IN_TRANSIT.
func (l *Load) Pickup(trucker kernel.Actor, now time.Time) error {
	_, err := l.Apply(trucker, Pickup, now)
	return err
}

// Deliver moves IN_TRANSIT to DELIVERED.
func (l *Load) Deliver(trucker kernel.Actor, now time.Time) error {
	_, err := l.Apply(trucker, Deliver, now)
	return err
}

// Close moves DELIVERED to CLOSED.
func (l *Load) Close(business kernel.Actor, now time.Time) error {
	_, err := l.Apply(business, Close, now)
	return err
}

// Cancel moves POSTED or MATCHED to CANCELLED and releases the matched trucker.
func (l *Load) Cancel(business kernel.Actor, now time.Time) error {
	_, err := l.Apply(business, Cancel, now)
	return err
}

func validateAssignee(status Status, hasAssignee bool) error {
	if hasAssignee && !status.RequiresAssignee() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assignee", status),
		)
	}
	if !hasAssignee && status.RequiresAssignee() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assignee", status),
		)
	}
	return nil
}
