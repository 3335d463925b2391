package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/meeplelab/ludoteca-service/pkg/circuitbreaker"
)

func (h *Handler) SearchCatalog(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	games, err := h.catalogSvc.Search(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpenCB) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *Handler) ImportCatalogGame(c echo.Context) error {
	externalID := c.Param("externalId")
	game, err := h.catalogSvc.GetOrCreate(c.Request().Context(), externalID)
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpenCB) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, game)
}
