package load

import (
	"fmt"
	"time"

	"loadboard/internal/pkg/errs"
)

// Timeline keeps one timestamp per status entered. Each stamp is set once and the
// sequence, taken in status order, never decreases.
type Timeline struct {
	stamps [Cancelled + 1]time.Time
}

// RestoreTimeline rebuilds a timeline from persisted stamps and checks that they
// never decrease in status order.
func RestoreTimeline(stamps map[Status]time.Time) (Timeline, error) {
	var tl Timeline
	var latest time.Time

	for _, status := range AllStatuses() {
		at, ok := stamps[status]
		if !ok || at.IsZero() {
			continue
		}
		at = normalize(at)
		if at.Before(latest) {
			return Timeline{}, errs.NewValueIsInvalidErrorWithCause(
				"timeline",
				fmt.Errorf("%s stamp %s is earlier than %s", status, at.Format(time.RFC3339Nano), latest.Format(time.RFC3339Nano)),
			)
		}
		tl.stamps[status] = at
		latest = at
	}

	return tl, nil
}

// At returns the time the status was entered and whether it was.
func (tl Timeline) At(status Status) (time.Time, bool) {
	if status.Validate() != nil {
		return time.Time{}, false
	}
	at := tl.stamps[status]
	return at, !at.IsZero()
}

// Has reports whether the status was ever entered.
func (tl Timeline) Has(status Status) bool {
	_, ok := tl.At(status)
	return ok
}

func (tl Timeline) PostedAt() time.Time {
	return tl.stamps[Posted]
}

// Stamps returns a copy of the stamps that are set, keyed by status.
func (tl Timeline) Stamps() map[Status]time.Time {
	out := make(map[Status]time.Time)
	for _, status := range AllStatuses() {
		if at, ok := tl.At(status); ok {
			out[status] = at
		}
	}
	return out
}

func (tl Timeline) latest() time.Time {
	var latest time.Time
	for _, at := range tl.stamps {
		if at.After(latest) {
			latest = at
		}
	}
	return latest
}

// stamp records now for status. A clock that went backwards is clamped to the
// latest existing stamp.
func (tl *Timeline) stamp(status Status, now time.Time) error {
	if tl.Has(status) {
		return errs.NewValueIsInvalidErrorWithCause("timeline", fmt.Errorf("%s is already stamped", status))
	}
	at := normalize(now)
	if latest := tl.latest(); at.Before(latest) {
		at = latest
	}
	tl.stamps[status] = at
	return nil
}

// normalize drops the monotonic reading and keeps microsecond precision, which is
// what the database round-trips.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
