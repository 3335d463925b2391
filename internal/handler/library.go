package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
)

func (h *Handler) GetGames(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	games, err := h.librarySvc.ListGames(c.Request().Context(), scope)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *Handler) GetGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	game, err := h.librarySvc.GetGame(c.Request().Context(), scope, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, game)
}

func (h *Handler) CreateGame(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var req model.CreateLibraryGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	game, err := h.librarySvc.CreateGame(c.Request().Context(), scope, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, game)
}

func (h *Handler) SetGameStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var req model.SetGameStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.librarySvc.SetGameStatus(c.Request().Context(), scope, id, req.Status); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateWithdraw(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	user, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateWithdrawRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	w, err := h.librarySvc.Withdraw(c.Request().Context(), scope, req, user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) ReturnWithdraw(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.librarySvc.Return(c.Request().Context(), scope, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetActiveWithdraws(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	withdraws, err := h.librarySvc.ActiveWithdraws(c.Request().Context(), scope)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, withdraws)
}

func (h *Handler) GetGameWithdraws(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	withdraws, err := h.librarySvc.WithdrawsByGame(c.Request().Context(), scope, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, withdraws)
}

func (h *Handler) GetLocations(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	locations, err := h.librarySvc.Locations(c.Request().Context(), scope, c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, locations)
}

func (h *Handler) CreateLocation(c echo.Context) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var req model.CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	location, err := h.librarySvc.CreateLocation(c.Request().Context(), scope, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, location)
}

func (h *Handler) DeleteLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid location id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.librarySvc.DeleteLocation(c.Request().Context(), scope, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
