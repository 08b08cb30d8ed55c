package http

import (
	"net/http"
	"strings"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// actionAliases maps the dashboards' route names onto lifecycle actions.
var actionAliases = map[string]load.Action{
	"accept": load.Claim,
	"assign": load.Confirm,
}

// Server translates HTTP requests into commands and queries. It holds no load
// state of its own; every response is read back from the handlers.
type Server struct {
	// Command handlers
	postLoadHandler       commands.PostLoadCommandHandler
	transitionLoadHandler commands.TransitionLoadCommandHandler

	// Query handlers
	getLoadHandler            queries.GetLoadQueryHandler
	listPostedLoadsHandler    queries.ListPostedLoadsQueryHandler
	listAvailableLoadsHandler queries.ListAvailableLoadsQueryHandler
	listAssignedLoadsHandler  queries.ListAssignedLoadsQueryHandler
	getTruckerEarningsHandler queries.GetTruckerEarningsQueryHandler
	getPosterSummaryHandler   queries.GetPosterSummaryQueryHandler

	newID func() kernel.UUID
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	postLoadHandler commands.PostLoadCommandHandler,
	transitionLoadHandler commands.TransitionLoadCommandHandler,
	getLoadHandler queries.GetLoadQueryHandler,
	listPostedLoadsHandler queries.ListPostedLoadsQueryHandler,
	listAvailableLoadsHandler queries.ListAvailableLoadsQueryHandler,
	listAssignedLoadsHandler queries.ListAssignedLoadsQueryHandler,
	getTruckerEarningsHandler queries.GetTruckerEarningsQueryHandler,
	getPosterSummaryHandler queries.GetPosterSummaryQueryHandler,
) *Server {
	return &Server{
		postLoadHandler:           postLoadHandler,
		transitionLoadHandler:     transitionLoadHandler,
		getLoadHandler:            getLoadHandler,
		listPostedLoadsHandler:    listPostedLoadsHandler,
		listAvailableLoadsHandler: listAvailableLoadsHandler,
		listAssignedLoadsHandler:  listAssignedLoadsHandler,
		getTruckerEarningsHandler: getTruckerEarningsHandler,
		getPosterSummaryHandler:   getPosterSummaryHandler,
		newID:                     kernel.NewUUID,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind authenticate.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticate echo.MiddlewareFunc) {
	api := e.Group("/api/v1", authenticate)

	loads := api.Group("/loads")
	loads.POST("", s.PostLoad)
	loads.GET("/my-loads", s.GetMyLoads)
	loads.GET("/available", s.GetAvailableLoads)
	loads.GET("/my-jobs", s.GetMyJobs)
	loads.GET("/:loadId", s.GetLoad)
	loads.PATCH("/:loadId/:action", s.TransitionLoad)

	api.GET("/truckers/me/earnings", s.GetMyEarnings)
	api.GET("/businesses/me/summary", s.GetMySummary)
}

// PostLoad handles POST /api/v1/loads. The role is checked before the body is
// read, so a trucker gets 403 whatever they send.
func (s *Server) PostLoad(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if !actor.IsBusiness() {
		return errs.NewActorIsNotAuthorizedError(actor.Role().String(), "post")
	}

	var req PostLoadRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	terms, err := req.terms()
	if err != nil {
		return err
	}

	cmd, err := commands.NewPostLoadCommand(s.newID(), actor, terms)
	if err != nil {
		return err
	}

	posted, err := s.postLoadHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newLoadResponse(queries.NewLoadView(posted)))
}

// TransitionLoad handles PATCH /api/v1/loads/{loadId}/{action}.
func (s *Server) TransitionLoad(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	loadID, err := bindLoadID(c)
	if err != nil {
		return err
	}

	var name string
	err = runtime.BindStyledParameterWithOptions("simple", "action", c.Param("action"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("action", err)
	}
	action, ok := actionAliases[strings.ToLower(name)]
	if !ok {
		if action, err = load.ParseAction(name); err != nil {
			return err
		}
	}

	cmd, err := commands.NewTransitionLoadCommand(loadID, actor, action)
	if err != nil {
		return err
	}

	updated, err := s.transitionLoadHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLoadResponse(queries.NewLoadView(updated)))
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(c echo.Context) error {
	if _, err := actorFrom(c); err != nil {
		return err
	}

	loadID, err := bindLoadID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetLoadQuery(loadID)
	if err != nil {
		return err
	}

	view, err := s.getLoadHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLoadResponse(view))
}

// GetMyLoads handles GET /api/v1/loads/my-loads for businesses.
func (s *Server) GetMyLoads(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListPostedLoadsQuery(actor)
	if err != nil {
		return err
	}

	views, err := s.listPostedLoadsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLoadResponses(views))
}

// GetAvailableLoads handles GET /api/v1/loads/available?vehicleType=&capacity=.
func (s *Server) GetAvailableLoads(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var params struct {
		VehicleType *string
		Capacity    *string
	}
	err = runtime.BindQueryParameter("form", true, false, "vehicleType", c.QueryParams(), &params.VehicleType)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType", err)
	}
	err = runtime.BindQueryParameter("form", true, false, "capacity", c.QueryParams(), &params.Capacity)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("capacity", err)
	}

	var vehicleType string
	if params.VehicleType != nil {
		vehicleType = *params.VehicleType
	}
	var capacity *decimal.Decimal
	if params.Capacity != nil {
		d, parseErr := decimal.NewFromString(*params.Capacity)
		if parseErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("capacity", parseErr)
		}
		capacity = &d
	}

	capability, err := load.NewCapability(vehicleType, capacity)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableLoadsQuery(actor, capability)
	if err != nil {
		return err
	}

	views, err := s.listAvailableLoadsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLoadResponses(views))
}

// GetMyJobs handles GET /api/v1/loads/my-jobs for truckers.
func (s *Server) GetMyJobs(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAssignedLoadsQuery(actor)
	if err != nil {
		return err
	}

	views, err := s.listAssignedLoadsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newLoadResponses(views))
}

// GetMyEarnings handles GET /api/v1/truckers/me/earnings.
func (s *Server) GetMyEarnings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTruckerEarningsQuery(actor)
	if err != nil {
		return err
	}

	earnings, err := s.getTruckerEarningsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newEarningsResponse(earnings))
}

// GetMySummary handles GET /api/v1/businesses/me/summary.
func (s *Server) GetMySummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPosterSummaryQuery(actor)
	if err != nil {
		return err
	}

	summary, err := s.getPosterSummaryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newSummaryResponse(summary))
}

func bindLoadID(c echo.Context) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "loadId", c.Param("loadId"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("loadId", err)
	}
	return kernel.UUIDFromBytes(raw[:])
}
