package load_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTerms(t *testing.T) load.Terms {
	t.Helper()
	terms, err := load.NewTerms(
		"Mumbai", "Delhi", "Electronics", "Semi-Truck",
		decimal.NewFromInt(5),
		kernel.MustMoney("10000"),
		baseTime.AddDate(0, 0, 3),
	)
	require.NoError(t, err)
	return terms
}

func newBusiness() kernel.Actor {
	return kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
}

func newTrucker() kernel.Actor {
	return kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
}

func newPostedLoad(t *testing.T, business kernel.Actor) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID(), business, newTerms(t), baseTime)
	require.NoError(t, err)
	return l
}

// advance drives a fresh load to the target status along the happy path, or via
// cancel from POSTED for CANCELLED.
func advance(t *testing.T, target load.Status) (*load.Load, kernel.Actor, kernel.Actor) {
	t.Helper()
	business, trucker := newBusiness(), newTrucker()
	l := newPostedLoad(t, business)

	if target == load.Cancelled {
		require.NoError(t, l.Cancel(business, baseTime.Add(time.Minute)))
		return l, business, trucker
	}

	steps := []struct {
		actor  kernel.Actor
		action load.Action
	}{
		{trucker, load.Claim},
		{business, load.Confirm},
		{trucker, load.Pickup},
		{trucker, load.Deliver},
		{business, load.Close},
	}
	at := baseTime
	for _, step := range steps {
		if l.Status() == target {
			break
		}
		at = at.Add(time.Hour)
		_, err := l.Apply(step.actor, step.action, at)
		require.NoError(t, err)
	}
	require.Equal(t, target, l.Status())
	return l, business, trucker
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
