package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

type summaryResponse struct {
	Games     []model.LibraryGame `json:"games"`
	Withdraws []model.Withdraw    `json:"withdraws"`
	Locations []model.Location    `json:"locations"`
}

// GetSummary is the counter dashboard payload: the full game list, open
// withdraws and locations in one round trip.
func (h *Handler) GetSummary(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var resp summaryResponse
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		games, err := h.librarySvc.ListGames(ctx, scope)
		if err != nil {
			return err
		}
		resp.Games = games
		return nil
	})
	gg.Go(func() error {
		withdraws, err := h.librarySvc.ActiveWithdraws(ctx, scope)
		if err != nil {
			return err
		}
		resp.Withdraws = withdraws
		return nil
	})
	gg.Go(func() error {
		locations, err := h.librarySvc.Locations(ctx, scope, "")
		if err != nil {
			return err
		}
		resp.Locations = locations
		return nil
	})
	if err := gg.Wait(); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
