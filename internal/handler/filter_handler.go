package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leasehub/internal/filter"
	"leasehub/internal/service"
)

// FilterHandler exposes the session's filter panel.
type FilterHandler struct {
	filterService service.FilterService
}

// NewFilterHandler creates a new filter handler.
func NewFilterHandler(filterService service.FilterService) *FilterHandler {
	return &FilterHandler{filterService: filterService}
}

// GetFilters godoc
// @Summary Current filter panel
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} filter.State
// @Failure 401 {object} errors.ErrorResponse
// @Router /filters [get]
func (h *FilterHandler) GetFilters(c echo.Context) error {
	st, err := h.filterService.Get(c.Request().Context(), sessionFrom(c).ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// UpdateFilters godoc
// @Summary Change filters
// @Description Omitted fields are left alone. Setting location or price marks it as chosen by hand.
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body filter.Patch true "Filter changes"
// @Success 200 {object} filter.State
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /filters [patch]
func (h *FilterHandler) UpdateFilters(c echo.Context) error {
	var p filter.Patch
	if err := c.Bind(&p); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	st, err := h.filterService.Update(c.Request().Context(), sessionFrom(c).ID, p)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// ResetFilters godoc
// @Summary Reset filters to defaults
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} filter.State
// @Failure 401 {object} errors.ErrorResponse
// @Router /filters [delete]
func (h *FilterHandler) ResetFilters(c echo.Context) error {
	st, err := h.filterService.Reset(c.Request().Context(), sessionFrom(c).ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, st)
}
