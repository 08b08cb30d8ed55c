package cmd

import (
	"log/slog"

	httpadapter "loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/out/memory"
	memoryloadrepo "loadboard/internal/adapters/out/memory/loadrepo"
	"loadboard/internal/adapters/out/postgres"
	postgresloadrepo "loadboard/internal/adapters/out/postgres/loadrepo"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	loads      ports.LoadReader
	uowFactory commands.UoWFactory
	clock      commands.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires every handler over the postgres store.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	factory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return CompositionRoot{
		configs: configs,
		loads:   postgresloadrepo.NewGormLoadRepository(gormDB),
		uowFactory: FuncUoWFactory(func() commands.UoW {
			return factory.Create()
		}),
		clock:  commands.SystemClock,
		logger: logger,
	}
}

// NewInMemoryCompositionRoot wires every handler over a fresh in-process store.
// Loads are lost when the process exits.
func NewInMemoryCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	store := memoryloadrepo.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	return CompositionRoot{
		configs: configs,
		loads:   store,
		uowFactory: FuncUoWFactory(func() commands.UoW {
			return factory.Create()
		}),
		clock:  commands.SystemClock,
		logger: logger,
	}
}

func (c *CompositionRoot) CreatePostLoadCommandHandler() commands.PostLoadCommandHandler {
	return commands.NewPostLoadCommandHandler(c.uowFactory, c.clock, c.logger)
}

func (c *CompositionRoot) CreateClaimLoadCommandHandler() commands.ClaimLoadCommandHandler {
	return commands.NewClaimLoadCommandHandler(c.uowFactory, c.clock, c.logger)
}

func (c *CompositionRoot) CreateTransitionLoadCommandHandler() commands.TransitionLoadCommandHandler {
	return commands.NewTransitionLoadCommandHandler(c.uowFactory, c.CreateClaimLoadCommandHandler(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateListPostedLoadsQueryHandler() queries.ListPostedLoadsQueryHandler {
	return queries.NewListPostedLoadsQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateListAvailableLoadsQueryHandler() queries.ListAvailableLoadsQueryHandler {
	return queries.NewListAvailableLoadsQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateListAssignedLoadsQueryHandler() queries.ListAssignedLoadsQueryHandler {
	return queries.NewListAssignedLoadsQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateGetTruckerEarningsQueryHandler() queries.GetTruckerEarningsQueryHandler {
	return queries.NewGetTruckerEarningsQueryHandler(c.loads, services.NewEarningsProjector())
}

func (c *CompositionRoot) CreateGetPosterSummaryQueryHandler() queries.GetPosterSummaryQueryHandler {
	return queries.NewGetPosterSummaryQueryHandler(c.loads, services.NewPosterSummarizer())
}

func (c *CompositionRoot) CreateGetBoardSnapshotQueryHandler() queries.GetBoardSnapshotQueryHandler {
	return queries.NewGetBoardSnapshotQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePostLoadCommandHandler(),
		c.CreateTransitionLoadCommandHandler(),
		c.CreateGetLoadQueryHandler(),
		c.CreateListPostedLoadsQueryHandler(),
		c.CreateListAvailableLoadsQueryHandler(),
		c.CreateListAssignedLoadsQueryHandler(),
		c.CreateGetTruckerEarningsQueryHandler(),
		c.CreateGetPosterSummaryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthenticator() (*httpadapter.Authenticator, error) {
	return httpadapter.NewAuthenticator(c.configs.AuthJWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetBoardSnapshotQueryHandler(), c.configs.BoardSnapshotSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
