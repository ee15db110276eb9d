package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	"leasehub/internal/model"
	"leasehub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{authService: authService, jwtService: jwtService, logger: logger}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required"`
}

// VerifyOTPRequest carries a one-time code.
type VerifyOTPRequest struct {
	Code string `json:"otp" validate:"required,numeric"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (h *AuthHandler) cookieMaxAge() int {
	return int(h.jwtService.TTL() / time.Second)
}

func (h *AuthHandler) issue(c echo.Context, status int, resp *service.AuthResponse) error {
	setSessionCookie(c, resp.Token, h.cookieMaxAge())
	return c.JSON(status, resp)
}

// Login godoc
// @Summary Login user
// @Description Signs in upstream and returns the route the browser continues to.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err)
	}
	return h.issue(c, http.StatusOK, resp)
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role := model.NormalizeRole(req.Role)
	if role == model.RoleUnknown || role == model.RoleAdmin {
		return badRequest("unsupported role", "INVALID_ROLE")
	}

	resp, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return respondError(err)
	}
	return h.issue(c, http.StatusCreated, resp)
}

// VerifyOTP godoc
// @Summary Verify a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyOTPRequest true "Code"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return errUnauthorized()
	}
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.VerifyOTP(c.Request().Context(), claims.SessionID, req.Code)
	if err != nil {
		return respondError(err)
	}
	return h.issue(c, http.StatusOK, resp)
}

// ResendOTP godoc
// @Summary Send a fresh one-time code
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return errUnauthorized()
	}
	if err := h.authService.ResendOTP(c.Request().Context(), claims.SessionID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "code sent"})
}

// Logout godoc
// @Summary Logout user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return errUnauthorized()
	}
	if err := h.authService.Logout(c.Request().Context(), claims.SessionID); err != nil {
		return respondError(err)
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Description Re-confirms the upstream session and returns the user.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return errUnauthorized()
	}
	user, err := h.authService.CurrentUser(c.Request().Context(), sess.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ForgotPassword godoc
// @Summary Request a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "if the account exists, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary Set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
}

// StartOAuth godoc
// @Summary Begin provider sign-in
// @Tags auth
// @Param provider path string true "Provider" Enums(google, facebook, apple)
// @Success 302
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/oauth/{provider} [get]
func (h *AuthHandler) StartOAuth(c echo.Context) error {
	token, redirect, err := h.authService.StartOAuth(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return respondError(err)
	}
	setSessionCookie(c, token, h.cookieMaxAge())
	return c.Redirect(http.StatusFound, redirect)
}

// OAuthCallback godoc
// @Summary Provider sign-in callback
// @Description Redirects to the landing route, or to the login page with an error.
// @Tags auth
// @Param success query bool false "Whether the provider sign-in succeeded"
// @Param userId query string false "Upstream user id"
// @Param error query string false "Provider error"
// @Success 302
// @Router /auth/oauth/callback [get]
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil {
		return h.oauthFailed(c)
	}
	claims, err := h.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return h.oauthFailed(c)
	}

	success, _ := strconv.ParseBool(c.QueryParam("success"))
	resp, err := h.authService.CompleteOAuth(c.Request().Context(), claims.SessionID, service.OAuthCallback{
		Success: success,
		UserID:  c.QueryParam("userId"),
		Error:   c.QueryParam("error"),
		Cookies: c.Cookies(),
	})
	if err != nil {
		h.logger.Info("oauth callback rejected", zap.Error(err))
		return h.oauthFailed(c)
	}
	setSessionCookie(c, resp.Token, h.cookieMaxAge())
	return c.Redirect(http.StatusFound, resp.Next)
}

func (h *AuthHandler) oauthFailed(c echo.Context) error {
	clearSessionCookie(c)
	target := bootstrap.Route{Path: bootstrap.PathLogin, Query: url.Values{"error": {"oauth_failed"}}}
	return c.Redirect(http.StatusFound, target.String())
}
