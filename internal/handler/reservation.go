package handler

import (
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/meeplelab/ludoteca-service/internal/errs"
	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (h *Handler) GetReservations(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	user, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reservations, err := h.reservationSvc.ListActive(c.Request().Context(), scope, user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *Handler) GetReservation(c echo.Context) error {
	displayID, err := strconv.Atoi(c.Param("displayId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid display id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	rsv, err := h.reservationSvc.GetByDisplayID(c.Request().Context(), scope, displayID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	user, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rsv, err := h.reservationSvc.Create(c.Request().Context(), scope, user.ID, req.LibraryGameID)
	if err != nil {
		if errors.Is(err, errs.ErrGameReserved) || errors.Is(err, errs.ErrGameWithdrawn) ||
			errors.Is(err, errs.ErrReservationFailed) {
			return echo.NewHTTPError(http.StatusConflict, errs.ErrReservationFailed.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

// StreamReservations pushes the caller's active reservations as
// server-sent events. Each event is the full current snapshot; the stream
// ends when the client disconnects.
func (h *Handler) StreamReservations(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	user, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	ctx := c.Request().Context()
	sub, err := h.reservationSvc.Subscribe(ctx, scope, user.ID)
	if err != nil {
		return httpError(err)
	}
	defer sub.Unsubscribe()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			data, err := json.Marshal(snapshot)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
