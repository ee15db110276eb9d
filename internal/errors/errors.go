package errors

import (
	"errors"
	"net/http"
	"sort"
)

var (
	// ErrUnauthorized is returned when a request carries no authenticated user.
	ErrUnauthorized = errors.New("authentication required")
	// ErrInvalidCredentials is returned when the upstream rejects email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAuthenticationFailed is returned when the session could not be confirmed after login.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrSessionNotFound is returned when the session record expired or never existed.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoPendingVerification is returned when an OTP is submitted for a session that awaits none.
	ErrNoPendingVerification = errors.New("no verification pending")
	// ErrInvalidOTP is returned when the upstream rejects a one-time code.
	ErrInvalidOTP = errors.New("invalid or expired code")
	// ErrUnsupportedProvider is returned for OAuth providers the upstream does not offer.
	ErrUnsupportedProvider = errors.New("unsupported oauth provider")
	// ErrOAuthFailed is returned when the OAuth callback reports a failure.
	ErrOAuthFailed = errors.New("oauth sign-in failed")
	// ErrPropertyNotFound is returned when the upstream has no such public property.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrTemplateNotFound is returned when a template does not exist for the owner.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrUnknownWizard is returned for wizard kinds that are not defined.
	ErrUnknownWizard = errors.New("unknown wizard")
	// ErrWizardNotStarted is returned when a wizard step is submitted before Start.
	ErrWizardNotStarted = errors.New("wizard not started")
	// ErrWizardCompleted is returned when a finished wizard is driven again.
	ErrWizardCompleted = errors.New("wizard already completed")
	// ErrWizardBusy is returned while another request is finishing the same wizard.
	ErrWizardBusy = errors.New("wizard is being completed")
	// ErrStepInvalid is returned when the current step's data does not pass its rules.
	ErrStepInvalid = errors.New("step is incomplete")
	// ErrForbidden is returned when the user's role may not perform the operation.
	ErrForbidden = errors.New("operation not allowed for this role")
	// ErrSuperseded is returned when a newer request replaced an in-flight one.
	ErrSuperseded = errors.New("request superseded by a newer one")
	// ErrAccountExists is returned when registering an email the upstream already knows.
	ErrAccountExists = errors.New("an account with this email already exists")
	// ErrInvalidResetToken is returned when a password-reset token is rejected.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrUpstreamRejected is returned for other client errors reported by the upstream.
	ErrUpstreamRejected = errors.New("request rejected by upstream")
	// ErrUpstreamUnavailable is returned when the property-management API cannot be reached.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	// ErrStoreUnavailable is returned when session state could not be read or written.
	ErrStoreUnavailable = errors.New("session store unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// StepError carries the per-field messages of a failed wizard step.
type StepError struct {
	Step   string
	Fields map[string]string
}

func (e *StepError) Error() string {
	return "step " + e.Step + " is incomplete"
}

// Unwrap lets errors.Is match ErrStepInvalid.
func (e *StepError) Unwrap() error {
	return ErrStepInvalid
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrAuthenticationFailed, http.StatusUnauthorized, "AUTHENTICATION_FAILED"},
	{ErrSessionNotFound, http.StatusUnauthorized, "SESSION_NOT_FOUND"},
	{ErrNoPendingVerification, http.StatusConflict, "NO_PENDING_VERIFICATION"},
	{ErrInvalidOTP, http.StatusBadRequest, "INVALID_OTP"},
	{ErrUnsupportedProvider, http.StatusBadRequest, "UNSUPPORTED_PROVIDER"},
	{ErrOAuthFailed, http.StatusUnauthorized, "OAUTH_FAILED"},
	{ErrPropertyNotFound, http.StatusNotFound, "PROPERTY_NOT_FOUND"},
	{ErrTemplateNotFound, http.StatusNotFound, "TEMPLATE_NOT_FOUND"},
	{ErrUnknownWizard, http.StatusNotFound, "UNKNOWN_WIZARD"},
	{ErrWizardNotStarted, http.StatusConflict, "WIZARD_NOT_STARTED"},
	{ErrWizardCompleted, http.StatusConflict, "WIZARD_COMPLETED"},
	{ErrWizardBusy, http.StatusConflict, "WIZARD_BUSY"},
	{ErrStepInvalid, http.StatusBadRequest, "STEP_INVALID"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrSuperseded, http.StatusConflict, "SUPERSEDED"},
	{ErrAccountExists, http.StatusConflict, "ACCOUNT_EXISTS"},
	{ErrInvalidResetToken, http.StatusBadRequest, "INVALID_RESET_TOKEN"},
	{ErrUpstreamRejected, http.StatusBadRequest, "UPSTREAM_REJECTED"},
	{ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
	{ErrStoreUnavailable, http.StatusServiceUnavailable, "STORE_UNAVAILABLE"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, stepErr.Error(), "STEP_INVALID")
		fields := make([]string, 0, len(stepErr.Fields))
		for field := range stepErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if httpErr.Details != "" {
				httpErr.Details += "; "
			}
			httpErr.Details += field + ": " + stepErr.Fields[field]
		}
		return httpErr
	}

	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
