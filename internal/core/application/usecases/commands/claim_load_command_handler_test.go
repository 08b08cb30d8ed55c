package commands_test

import (
	"errors"
	"testing"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type claimFixture struct {
	business kernel.Actor
	trucker  kernel.Actor
	posted   *load.Load
	repo     *MockLoadRepository
	uow      *MockUoW
	factory  *MockUoWFactory
	handler  commands.ClaimLoadCommandHandler
}

func newClaimFixture(t *testing.T) claimFixture {
	t.Helper()
	f := claimFixture{
		business: kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness),
		trucker:  kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker),
		repo:     new(MockLoadRepository),
		uow:      new(MockUoW),
		factory:  new(MockUoWFactory),
	}
	posted, err := load.NewLoad(kernel.NewUUID(), f.business, newTerms(t), baseTime)
	require.NoError(t, err)
	f.posted = posted
	f.handler = commands.NewClaimLoadCommandHandler(f.factory, fixedClock, discardLogger())
	return f
}

func (f claimFixture) command(t *testing.T, actor kernel.Actor) commands.ClaimLoadCommand {
	t.Helper()
	cmd, err := commands.NewClaimLoadCommand(f.posted.ID(), actor)
	require.NoError(t, err)
	return cmd
}

func TestClaimLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)

	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("LoadRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, f.posted.ID()).Return(f.posted, nil).Once(),
		f.repo.On("Claim", ctx, f.posted).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	claimed, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	require.NoError(t, err)
	assert.Equal(t, load.Matched, claimed.Status())
	assert.True(t, claimed.IsAssignedTo(f.trucker.ID()))
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}

func TestClaimLoadCommandHandler_Handle_BusinessIsNotAuthorized(t *testing.T) {
	f := newClaimFixture(t)

	_, err := f.handler.Handle(t.Context(), f.command(t, f.business))

	require.ErrorIs(t, err, errs.ErrActorIsNotAuthorized)
	f.factory.AssertNotCalled(t, "Create")
}

func TestClaimLoadCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, f.posted.ID()).Return(nil, errs.NewObjectNotFoundError("load", f.posted.ID().String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertExpectations(t)
}

func TestClaimLoadCommandHandler_Handle_AlreadyMatchedIsConflict(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)
	winner := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
	require.NoError(t, f.posted.Claim(winner, baseTime))

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, f.posted.ID()).Return(f.posted, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	assert.True(t, f.posted.IsAssignedTo(winner.ID()))
	f.repo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimLoadCommandHandler_Handle_LostSwapIsConflict(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, f.posted.ID()).Return(f.posted, nil).Once()
	f.repo.On("Claim", ctx, f.posted).Return(errs.ErrPreconditionFailed).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	var conflict *errs.ConcurrencyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "no longer available")
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimLoadCommandHandler_Handle_TruckerWithActiveJob(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, f.posted.ID()).Return(f.posted, nil).Once()
	f.repo.On("Claim", ctx, f.posted).Return(errs.ErrAssigneeHasActiveJob).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	require.ErrorIs(t, err, commands.ErrTruckerHasActiveJob)
	require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrConcurrencyConflict)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimLoadCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	f := newClaimFixture(t)
	storeErr := errors.New("connection reset")

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, f.posted.ID()).Return(f.posted, nil).Once()
	f.repo.On("Claim", ctx, f.posted).Return(storeErr).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, f.trucker))

	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, errs.ErrConcurrencyConflict)
}
