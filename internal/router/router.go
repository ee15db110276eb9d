package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"leasehub/internal/auth"
	"leasehub/internal/errors"
	"leasehub/internal/handler"
	"leasehub/internal/service"
)

// Handlers bundles the HTTP handlers the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Filter   *handler.FilterHandler
	Property *handler.PropertyHandler
	Template *handler.TemplateHandler
	Wizard   *handler.WizardHandler
	Seed     *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	logger *zap.Logger,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)
	api.GET("/auth/oauth/callback", h.Auth.OAuthCallback)
	api.GET("/auth/oauth/:provider", h.Auth.StartOAuth)

	// Session token required, the session may still await verification
	secured := api.Group("", SessionToken(jwtService))
	secured.POST("/auth/verify-otp", h.Auth.VerifyOTP)
	secured.POST("/auth/resend-otp", h.Auth.ResendOTP)
	secured.POST("/auth/logout", h.Auth.Logout)

	// Confirmed session required
	user := secured.Group("", handler.SessionGuard(authService))
	user.GET("/auth/me", h.Auth.Me)

	user.GET("/filters", h.Filter.GetFilters)
	user.PATCH("/filters", h.Filter.UpdateFilters)
	user.DELETE("/filters", h.Filter.ResetFilters)

	user.GET("/properties", h.Property.Search)
	user.GET("/properties/:id", h.Property.Detail)

	user.GET("/templates", h.Template.ListTemplates)
	user.POST("/templates", h.Template.CreateTemplate)
	user.GET("/templates/:id", h.Template.GetTemplate)
	user.PUT("/templates/:id", h.Template.UpdateTemplate)
	user.DELETE("/templates/:id", h.Template.DeleteTemplate)
	user.POST("/seed/templates", h.Seed.SeedTemplates)

	user.POST("/wizards/:kind", h.Wizard.StartWizard)
	user.GET("/wizards/:kind", h.Wizard.GetWizard)
	user.POST("/wizards/:kind/next", h.Wizard.NextStep)
	user.POST("/wizards/:kind/back", h.Wizard.PreviousStep)
}

// SessionToken validates the session token from the Authorization header or
// the session cookie and stores it under the "user" context key.
func SessionToken(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    jwtService.SigningKey(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    handler.ContextKeyToken,
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + auth.CookieName,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				logger.Warn("request", fields...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
