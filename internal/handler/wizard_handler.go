package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leasehub/internal/service"
	"leasehub/internal/wizard"
)

// WizardHandler drives the multi-step forms.
type WizardHandler struct {
	wizardService service.WizardService
}

// NewWizardHandler creates a new wizard handler.
func NewWizardHandler(wizardService service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// StepRequest carries the fields entered on the current step.
type StepRequest struct {
	Data wizard.Data `json:"data"`
}

func wizardKind(c echo.Context) wizard.Kind {
	return wizard.Kind(c.Param("kind"))
}

// StartWizard godoc
// @Summary Start a wizard on its first step
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Wizard" Enums(template, onboarding, request)
// @Success 201 {object} service.WizardView
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /wizards/{kind} [post]
func (h *WizardHandler) StartWizard(c echo.Context) error {
	v, err := h.wizardService.Start(c.Request().Context(), sessionFrom(c), wizardKind(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, v)
}

// GetWizard godoc
// @Summary Running wizard
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Wizard" Enums(template, onboarding, request)
// @Success 200 {object} service.WizardView
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /wizards/{kind} [get]
func (h *WizardHandler) GetWizard(c echo.Context) error {
	v, err := h.wizardService.Get(c.Request().Context(), sessionFrom(c), wizardKind(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, v)
}

// NextStep godoc
// @Summary Submit the current step
// @Description Entered data is kept even when the step is rejected. On the last step the wizard's action runs.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Wizard" Enums(template, onboarding, request)
// @Param request body StepRequest false "Step fields"
// @Success 200 {object} service.WizardResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /wizards/{kind}/next [post]
func (h *WizardHandler) NextStep(c echo.Context) error {
	var req StepRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	res, err := h.wizardService.Next(c.Request().Context(), sessionFrom(c), wizardKind(c), req.Data)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// PreviousStep godoc
// @Summary Go back one step
// @Description From the first step the wizard is discarded and exit is set.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Wizard" Enums(template, onboarding, request)
// @Success 200 {object} service.WizardResult
// @Failure 409 {object} errors.ErrorResponse
// @Router /wizards/{kind}/back [post]
func (h *WizardHandler) PreviousStep(c echo.Context) error {
	res, err := h.wizardService.Back(c.Request().Context(), sessionFrom(c), wizardKind(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, res)
}
