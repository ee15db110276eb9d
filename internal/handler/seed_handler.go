package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leasehub/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	templateService service.TemplateService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(templateService service.TemplateService) *SeedHandler {
	return &SeedHandler{templateService: templateService}
}

// SeedTemplatesResponse represents the seed response.
type SeedTemplatesResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedTemplates godoc
// @Summary Add the starter templates
// @Description Titles the user already has are skipped.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedTemplatesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/templates [post]
func (h *SeedHandler) SeedTemplates(c echo.Context) error {
	count, err := h.templateService.SeedStarter(c.Request().Context(), sessionFrom(c).User.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SeedTemplatesResponse{
		Message: "Templates seeded successfully",
		Count:   count,
	})
}
