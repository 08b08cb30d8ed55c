package commands_test

import (
	"sync"
	"testing"
	"time"

	"loadboard/internal/adapters/out/memory"
	"loadboard/internal/adapters/out/memory/loadrepo"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUoWFactory struct {
	inner *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.UoW {
	return f.inner.Create()
}

// tickingClock advances one second per reading so every stamp is distinct.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type board struct {
	store  *loadrepo.Store
	post   commands.PostLoadCommandHandler
	engine commands.TransitionLoadCommandHandler
}

func newBoard() board {
	store := loadrepo.NewStore()
	factory := memoryUoWFactory{inner: memory.NewUnitOfWorkFactory(store)}
	clock := &tickingClock{now: baseTime}
	logger := discardLogger()

	claims := commands.NewClaimLoadCommandHandler(factory, clock.Now, logger)
	return board{
		store:  store,
		post:   commands.NewPostLoadCommandHandler(factory, clock.Now, logger),
		engine: commands.NewTransitionLoadCommandHandler(factory, claims, clock.Now, logger),
	}
}

func (b board) postLoad(t *testing.T, business kernel.Actor) *load.Load {
	t.Helper()
	terms, err := load.NewTerms("Mumbai", "Delhi", "Electronics", "Semi-Truck",
		decimal.NewFromInt(5), kernel.MustMoney("10000"), baseTime.AddDate(0, 0, 2))
	require.NoError(t, err)
	cmd, err := commands.NewPostLoadCommand(kernel.NewUUID(), business, terms)
	require.NoError(t, err)
	posted, err := b.post.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return posted
}

func (b board) do(t *testing.T, loadID kernel.UUID, actor kernel.Actor, action load.Action) (*load.Load, error) {
	t.Helper()
	cmd, err := commands.NewTransitionLoadCommand(loadID, actor, action)
	require.NoError(t, err)
	return b.engine.Handle(t.Context(), cmd)
}

func (b board) stored(t *testing.T, loadID kernel.UUID) *load.Load {
	t.Helper()
	l, err := b.store.Get(t.Context(), loadID)
	require.NoError(t, err)
	return l
}

func TestLifecycle_MumbaiToDelhi(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	t1 := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
	t2 := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)

	posted := b.postLoad(t, business)
	require.Equal(t, load.Posted, posted.Status())

	var (
		wg      sync.WaitGroup
		results [2]error
	)
	for i, trucker := range []kernel.Actor{t1, t2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewTransitionLoadCommand(posted.ID(), trucker, load.Claim)
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = b.engine.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	winner, loser := t1, t2
	if results[0] != nil {
		winner, loser = t2, t1
		require.ErrorIs(t, results[0], errs.ErrConcurrencyConflict)
		require.NoError(t, results[1])
	} else {
		require.ErrorIs(t, results[1], errs.ErrConcurrencyConflict)
	}

	l := b.stored(t, posted.ID())
	assert.Equal(t, load.Matched, l.Status())
	assert.True(t, l.IsAssignedTo(winner.ID()))

	_, err := b.do(t, posted.ID(), business, load.Confirm)
	require.NoError(t, err)
	assert.Equal(t, load.Assigned, b.stored(t, posted.ID()).Status())

	_, err = b.do(t, posted.ID(), winner, load.Pickup)
	require.NoError(t, err)

	_, err = b.do(t, posted.ID(), loser, load.Pickup)
	require.ErrorIs(t, err, errs.ErrActorIsNotAuthorized)

	_, err = b.do(t, posted.ID(), winner, load.Deliver)
	require.NoError(t, err)

	_, err = b.do(t, posted.ID(), business, load.Close)
	require.NoError(t, err)

	final := b.stored(t, posted.ID())
	assert.Equal(t, load.Closed, final.Status())
	assert.True(t, final.IsAssignedTo(winner.ID()))
	assert.Len(t, final.Timeline().Stamps(), 6)

	projector := services.NewEarningsProjector()
	winnerLoads, err := b.store.ListByAssignee(t.Context(), winner.ID())
	require.NoError(t, err)
	earnings := projector.Project(winner.ID(), winnerLoads)
	assert.Equal(t, "10000.00", earnings.Total.String())
	assert.Equal(t, 1, earnings.CompletedTrips)

	loserLoads, err := b.store.ListByAssignee(t.Context(), loser.ID())
	require.NoError(t, err)
	assert.True(t, projector.Project(loser.ID(), loserLoads).Total.IsZero())
}

func TestLifecycle_ManyConcurrentClaimsOneWinner(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	posted := b.postLoad(t, business)

	const claimants = 32
	truckers := make([]kernel.Actor, claimants)
	results := make([]error, claimants)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range claimants {
		truckers[i] = kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewTransitionLoadCommand(posted.ID(), truckers[i], load.Claim)
			if err != nil {
				results[i] = err
				return
			}
			<-start
			_, results[i] = b.engine.Handle(t.Context(), cmd)
		}()
	}
	close(start)
	wg.Wait()

	winners := 0
	var winner kernel.Actor
	for i, err := range results {
		if err == nil {
			winners++
			winner = truckers[i]
			continue
		}
		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	}
	require.Equal(t, 1, winners)

	l := b.stored(t, posted.ID())
	assert.Equal(t, load.Matched, l.Status())
	assert.True(t, l.IsAssignedTo(winner.ID()))
}

func TestLifecycle_ConcurrentDuplicateCommandsApplyOnce(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
	posted := b.postLoad(t, business)
	_, err := b.do(t, posted.ID(), trucker, load.Claim)
	require.NoError(t, err)

	const attempts = 16
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewTransitionLoadCommand(posted.ID(), business, load.Confirm)
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			_, results[i] = b.engine.Handle(t.Context(), cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, load.Assigned, b.stored(t, posted.ID()).Status())
}

func TestLifecycle_CancelWindowAndNoResurrection(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)

	matched := b.postLoad(t, business)
	_, err := b.do(t, matched.ID(), trucker, load.Claim)
	require.NoError(t, err)

	cancelled, err := b.do(t, matched.ID(), business, load.Cancel)
	require.NoError(t, err)
	assert.Equal(t, load.Cancelled, cancelled.Status())
	assert.Nil(t, b.stored(t, matched.ID()).AssignedTo())

	for _, action := range load.AllActions() {
		actor := business
		if action.RequiredRole() == kernel.RoleTrucker {
			actor = trucker
		}
		_, err = b.do(t, matched.ID(), actor, action)
		require.Error(t, err, action.String())
	}
	assert.Equal(t, load.Cancelled, b.stored(t, matched.ID()).Status())

	assigned := b.postLoad(t, business)
	_, err = b.do(t, assigned.ID(), trucker, load.Claim)
	require.NoError(t, err)
	_, err = b.do(t, assigned.ID(), business, load.Confirm)
	require.NoError(t, err)

	_, err = b.do(t, assigned.ID(), business, load.Cancel)
	require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
}

func TestLifecycle_OneActiveJobPerTrucker(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
	first := b.postLoad(t, business)
	second := b.postLoad(t, business)

	_, err := b.do(t, first.ID(), trucker, load.Claim)
	require.NoError(t, err)

	_, err = b.do(t, second.ID(), trucker, load.Claim)
	require.ErrorIs(t, err, commands.ErrTruckerHasActiveJob)
	assert.Equal(t, load.Posted, b.stored(t, second.ID()).Status())

	for _, step := range []struct {
		actor  kernel.Actor
		action load.Action
	}{
		{business, load.Confirm},
		{trucker, load.Pickup},
		{trucker, load.Deliver},
	} {
		_, err = b.do(t, first.ID(), step.actor, step.action)
		require.NoError(t, err)
	}

	_, err = b.do(t, second.ID(), trucker, load.Claim)
	require.NoError(t, err)
}

func TestLifecycle_ConcurrentClaimsByOneTruckerWinOneLoad(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)

	const loads = 16
	cmds := make([]commands.TransitionLoadCommand, loads)
	for i := range loads {
		cmd, err := commands.NewTransitionLoadCommand(b.postLoad(t, business).ID(), trucker, load.Claim)
		require.NoError(t, err)
		cmds[i] = cmd
	}

	results := make([]error, loads)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range loads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = b.engine.Handle(t.Context(), cmds[i])
		}()
	}
	close(start)
	wg.Wait()

	won := 0
	for _, err := range results {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, commands.ErrTruckerHasActiveJob)
	}
	assert.Equal(t, 1, won)

	held, err := b.store.ListByAssignee(t.Context(), trucker.ID())
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func TestLifecycle_NotFound(t *testing.T) {
	b := newBoard()
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)

	_, err := b.do(t, kernel.NewUUID(), business, load.Confirm)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
