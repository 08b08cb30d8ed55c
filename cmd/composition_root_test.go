package cmd_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loadboard/cmd"
	httpadapter "loadboard/internal/adapters/in/http"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCompositionRoot_WiresHandlersOverOneStore(t *testing.T) {
	cfg := cmd.Config{HTTPPort: "0", StorageDriver: cmd.StorageDriverMemory, AuthJWTSecret: "s"}
	app := cmd.NewInMemoryCompositionRoot(cfg, slog.New(slog.DiscardHandler))
	ctx := t.Context()

	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	terms, err := load.NewTerms("Mumbai", "Delhi", "Electronics", "Semi-Truck",
		decimal.NewFromInt(5), kernel.MustMoney("10000"), time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	post, err := commands.NewPostLoadCommand(kernel.NewUUID(), business, terms)
	require.NoError(t, err)

	posted, err := app.CreatePostLoadCommandHandler().Handle(ctx, post)
	require.NoError(t, err)

	snapshot, err := app.CreateGetBoardSnapshotQueryHandler().Handle(ctx, queries.NewGetBoardSnapshotQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Total)

	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)
	claim, err := commands.NewTransitionLoadCommand(posted.ID(), trucker, load.Claim)
	require.NoError(t, err)
	claimed, err := app.CreateTransitionLoadCommandHandler().Handle(ctx, claim)
	require.NoError(t, err)
	assert.Equal(t, load.Matched, claimed.Status())
}

func TestInMemoryCompositionRoot_ServesHTTP(t *testing.T) {
	cfg := cmd.Config{HTTPPort: "0", StorageDriver: cmd.StorageDriverMemory, AuthJWTSecret: "s"}
	logger := slog.New(slog.DiscardHandler)
	app := cmd.NewInMemoryCompositionRoot(cfg, logger)

	auth, err := app.CreateAuthenticator()
	require.NoError(t, err)

	e := httpadapter.NewEcho(logger)
	app.CreateServer().RegisterRoutes(e, auth.Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/loads/my-loads", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	manager := app.CreateJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
