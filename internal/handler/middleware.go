package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
	"github.com/meeplelab/ludoteca-service/pkg/logger"
)

const (
	tenantKeyString = "tenantKey"
	scopeKeyString  = "tenantScopeKey"

	bearer = "Bearer "
)

// tenantMW resolves the tenant from the request Host and pins the
// tenant+edition scope for everything downstream. Unknown hosts are a 404,
// before any route logic runs.
func (h *Handler) tenantMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		host := c.Request().Host
		if hostname, _, err := net.SplitHostPort(host); err == nil {
			host = hostname
		}
		tenant, err := h.tenantSvc.ResolveByHostname(c.Request().Context(), host)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Set(tenantKeyString, tenant)
		c.Set(scopeKeyString, model.Scope{TenantID: tenant.ID, EditionID: tenant.CurrentEditionID})
		return next(c)
	}
}

// authMW validates the bearer token and narrows its access map to the
// resolved tenant. A valid token without an entry for this tenant still
// authenticates, it just carries no role.
func (h *Handler) authMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearer)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token in Authorization header")
		}
		claims, err := auth.ParseToken(token, h.jwtKey)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid")
		}
		tenant, err := tenantFromCtx(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		user := auth.User{
			ID:     claims.Subject,
			Email:  claims.Email,
			Access: claims.Access[tenant.ID],
		}
		c.SetRequest(c.Request().WithContext(auth.SetAuthContext(c.Request().Context(), user)))
		return next(c)
	}
}

func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := auth.FromContext(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !user.HasAnyRole(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

func tenantFromCtx(c echo.Context) (model.Tenant, error) {
	tenant, ok := c.Get(tenantKeyString).(model.Tenant)
	if !ok {
		return model.Tenant{}, errors.New("no tenant in context")
	}
	return tenant, nil
}

func scopeFromCtx(c echo.Context) (model.Scope, error) {
	scope, ok := c.Get(scopeKeyString).(model.Scope)
	if !ok {
		return model.Scope{}, errors.New("no scope in context")
	}
	return scope, nil
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	cfg := logger.Log{LogLevel: zapcore.DebugLevel, Sink: ""}
	log := logger.NewLogger(cfg, "echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}
