package load

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions:
//
//	POSTED ──claim──> MATCHED ──confirm──> ASSIGNED ──pickup──> IN_TRANSIT ──deliver──> DELIVERED ──close──> CLOSED
//	   │                 │
//	   └──cancel──┬──────┘
//	              v
//	          CANCELLED
//
// Constants are declared in path order; Timeline relies on that order to check
// that timestamps never decrease.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Posted is the initial status, entered at creation. The load is open for claims.
	Posted

	// Matched means a trucker won the claim and awaits the poster's confirmation.
	Matched

	// Assigned means the poster confirmed the matched trucker.
	Assigned

	// InTransit means the assigned trucker picked the cargo up.
	InTransit

	// Delivered means the trucker reported delivery; the trip counts towards earnings.
	Delivered

	// Closed means the poster verified the delivery. Terminal.
	Closed

	// Cancelled means the poster withdrew the load before pickup. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Posted:    "POSTED",
		Matched:   "MATCHED",
		Assigned:  "ASSIGNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Closed:    "CLOSED",
		Cancelled: "CANCELLED",
	}
}

// AllStatuses lists every valid status in path order.
func AllStatuses() []Status {
	return []Status{Posted, Matched, Assigned, InTransit, Delivered, Closed, Cancelled}
}

// ActiveJobStatuses are the statuses in which a trucker is working a load.
func ActiveJobStatuses() []Status {
	return []Status{Matched, Assigned, InTransit}
}

// CompletedTripStatuses are the statuses whose price counts towards earnings.
func CompletedTripStatuses() []Status {
	return []Status{Delivered, Closed}
}

// ParseStatus converts a wire name such as "IN_TRANSIT" into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the seven lifecycle states.
func (s Status) Validate() error {
	if s < Posted || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}

// RequiresAssignee reports whether a load in this status must have an assignee.
// For every other valid status the load must have none.
func (s Status) RequiresAssignee() bool {
	switch s {
	case Matched, Assigned, InTransit, Delivered, Closed:
		return true
	case Unknown, Posted, Cancelled:
	}
	return false
}

// IsActiveJob reports whether a trucker holding a load in this status is busy with it.
func (s Status) IsActiveJob() bool {
	return s == Matched || s == Assigned || s == InTransit
}

// IsCompletedTrip reports whether the load's price counts as earned by its assignee.
func (s Status) IsCompletedTrip() bool {
	return s == Delivered || s == Closed
}

// Next returns the status the action leads to from s.
//
// Returns a StatusTransitionIsInvalidError when the graph has no such edge,
// including every action from a terminal status.
func (s Status) Next(action Action) (Status, error) {
	if next, ok := getTransitions()[s][action]; ok {
		return next, nil
	}
	return Unknown, errs.NewStatusTransitionIsInvalidError(s.String(), action.String())
}

// CanApply reports whether the graph has an edge for action from s.
func (s Status) CanApply(action Action) bool {
	_, err := s.Next(action)
	return err == nil
}

func getTransitions() map[Status]map[Action]Status {
	return map[Status]map[Action]Status{
		Posted: {
			Claim:  Matched,
			Cancel: Cancelled,
		},
		Matched: {
			Confirm: Assigned,
			Cancel:  Cancelled,
		},
		Assigned: {
			Pickup: InTransit,
		},
		InTransit: {
			Deliver: Delivered,
		},
		Delivered: {
			Close: Closed,
		},
	}
}
