package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/meeplelab/ludoteca-service/docs"
	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
	"github.com/meeplelab/ludoteca-service/pkg/validate"
)

type Handler struct {
	tenantSvc      TenantService
	librarySvc     LibraryService
	reservationSvc ReservationService
	catalogSvc     CatalogService
	jwtKey         []byte
	log            *zap.Logger
}

func New(
	tenantSvc TenantService,
	librarySvc LibraryService,
	reservationSvc ReservationService,
	catalogSvc CatalogService,
	authCfg auth.Config,
	log *zap.Logger,
) *Handler {
	return &Handler{
		tenantSvc:      tenantSvc,
		librarySvc:     librarySvc,
		reservationSvc: reservationSvc,
		catalogSvc:     catalogSvc,
		jwtKey:         []byte(authCfg.JWTKey),
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		h.tenantMW,
	)
	api.GET("/tenant", h.GetTenant)
	api.GET("/editions/:id", h.GetEdition)
	api.GET("/games", h.GetGames)
	api.GET("/games/:id", h.GetGame)
	api.GET("/locations", h.GetLocations)
	api.GET("/catalog/search", h.SearchCatalog)

	authed := api.Group("", h.authMW)
	authed.GET("/reservations", h.GetReservations)
	authed.GET("/reservations/feed", h.StreamReservations)
	authed.GET("/reservations/:displayId", h.GetReservation)
	authed.POST("/reservations", h.CreateReservation)

	staff := authed.Group("", requireRole(auth.RoleAdmin, auth.RoleStaff))
	staff.POST("/games", h.CreateGame)
	staff.PATCH("/games/:id/status", h.SetGameStatus)
	staff.GET("/games/:id/withdraws", h.GetGameWithdraws)
	staff.POST("/games/:id/return", h.ReturnWithdraw)
	staff.GET("/summary", h.GetSummary)
	staff.POST("/withdraws", h.CreateWithdraw)
	staff.GET("/withdraws", h.GetActiveWithdraws)
	staff.POST("/locations", h.CreateLocation)
	staff.DELETE("/locations/:id", h.DeleteLocation)
	staff.POST("/catalog/games/:externalId", h.ImportCatalogGame)

	admin := authed.Group("", requireRole(auth.RoleAdmin))
	admin.PATCH("/tenant", h.UpdateTenant)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto status codes. Anything unrecognized is
// a 500 so a store failure never masquerades as a client mistake.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrGameReserved), errors.Is(err, errs.ErrGameWithdrawn):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
