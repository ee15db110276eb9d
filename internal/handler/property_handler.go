package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"leasehub/internal/service"
)

// PropertyHandler handles listing search and detail.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Search godoc
// @Summary Search public listings
// @Description Applies the session's filters, filling unset fields from the tenant's preferences when enabled.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param usePreferences query bool false "Fill unset filters from stored preferences" default(true)
// @Success 200 {object} service.SearchResult
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	usePreferences := true
	if raw := c.QueryParam("usePreferences"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest("usePreferences must be a boolean", "INVALID_QUERY")
		}
		usePreferences = v
	}

	res, err := h.propertyService.Search(c.Request().Context(), sessionFrom(c), usePreferences)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Detail godoc
// @Summary Property detail
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} model.PropertyDetail
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Detail(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest("missing property id", "INVALID_ID")
	}
	detail, err := h.propertyService.Detail(c.Request().Context(), sessionFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
