package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meeplelab/ludoteca-service/internal/model"
)

func (h *Handler) GetTenant(c echo.Context) error {
	tenant, err := tenantFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tenant)
}

func (h *Handler) UpdateTenant(c echo.Context) error {
	tenant, err := tenantFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var req model.UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	updated, err := h.tenantSvc.Update(c.Request().Context(), tenant.ID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) GetEdition(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid edition id")
	}
	scope, err := scopeFromCtx(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	edition, err := h.tenantSvc.GetEdition(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	if edition.TenantID != scope.TenantID {
		return echo.NewHTTPError(http.StatusNotFound, "edition not found")
	}
	return c.JSON(http.StatusOK, edition)
}
