package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return baseTime
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTerms(t *testing.T) load.Terms {
	t.Helper()
	terms, err := load.NewTerms("Mumbai", "Delhi", "Electronics", "Semi-Truck",
		decimal.NewFromInt(5), kernel.MustMoney("10000"), baseTime.AddDate(0, 0, 2))
	require.NoError(t, err)
	return terms
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) CompareAndSwap(ctx context.Context, l *load.Load, expected load.Status) error {
	args := m.Called(ctx, l, expected)
	return args.Error(0)
}

func (m *MockLoadRepository) Claim(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*load.Load); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoadRepository) ListByPoster(ctx context.Context, id kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) ListAvailable(ctx context.Context, c load.Capability) ([]*load.Load, error) {
	args := m.Called(ctx, c)
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) ListByAssignee(ctx context.Context, id kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*load.Load), args.Error(1)
}

func (m *MockLoadRepository) HasActiveByAssignee(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoadRepository) CountByStatus(ctx context.Context) (map[load.Status]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[load.Status]int), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
