package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"leasehub/internal/service"
)

// TemplateHandler manages the signed-in user's message templates.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// TemplateRequest is the body of create and update.
type TemplateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle" validate:"max=300"`
	Content  string `json:"content" validate:"required"`
}

func (r TemplateRequest) input() service.TemplateInput {
	return service.TemplateInput{Title: r.Title, Subtitle: r.Subtitle, Content: r.Content}
}

func templateID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid template id", "INVALID_UUID")
	}
	return id, nil
}

// ListTemplates godoc
// @Summary List templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Template
// @Failure 401 {object} errors.ErrorResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	tpls, err := h.templateService.List(c.Request().Context(), sessionFrom(c).User.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tpls)
}

// GetTemplate godoc
// @Summary Get template by id
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} model.Template
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	id, err := templateID(c)
	if err != nil {
		return err
	}
	tpl, err := h.templateService.Get(c.Request().Context(), sessionFrom(c).User.UserID, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tpl)
}

// CreateTemplate godoc
// @Summary Create template
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TemplateRequest true "Template"
// @Success 201 {object} model.Template
// @Failure 400 {object} errors.ErrorResponse
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	var req TemplateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tpl, err := h.templateService.Create(c.Request().Context(), sessionFrom(c).User.UserID, req.input())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate godoc
// @Summary Update template
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body TemplateRequest true "Template"
// @Success 200 {object} model.Template
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	id, err := templateID(c)
	if err != nil {
		return err
	}
	var req TemplateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tpl, err := h.templateService.Update(c.Request().Context(), sessionFrom(c).User.UserID, id, req.input())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate godoc
// @Summary Delete template
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	id, err := templateID(c)
	if err != nil {
		return err
	}
	if err := h.templateService.Delete(c.Request().Context(), sessionFrom(c).User.UserID, id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
