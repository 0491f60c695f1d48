package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"devfolio/internal/auth"
	"devfolio/internal/config"
	apperrors "devfolio/internal/errors"
	"devfolio/internal/handler"
	mw "devfolio/internal/middleware"
	"devfolio/internal/repository"
)

const bodyLimit = "10M"

// Register wires the request pipeline and all routes. Pipeline order: security
// headers, CORS, request id, access logging (non-production), recovery, body
// size cap, then the /api group behind the rate limiter.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	portfolioHandler *handler.PortfolioHandler,
	contactHandler *handler.ContactHandler,
	userHandler *handler.UserHandler,
) {
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echomw.RequestID())
	if !cfg.IsProduction() {
		e.Use(echomw.Logger())
	}
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(bodyLimit))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.Use(RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))

	api.GET("/health", Health)

	authenticate := mw.Authenticate(jwtService, userRepo)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, authenticate)
	authGroup.PUT("/profile", authHandler.UpdateProfile, authenticate)
	authGroup.POST("/logout", authHandler.Logout, authenticate)

	// Portfolio routes: public reads, admin writes
	portfolio := api.Group("/portfolio")
	portfolio.GET("", portfolioHandler.List)
	portfolio.GET("/:id", portfolioHandler.Get)
	portfolioAdmin := portfolio.Group("", authenticate, mw.RequirePermission(mw.PermManagePortfolio))
	portfolioAdmin.POST("", portfolioHandler.Create)
	portfolioAdmin.PUT("/:id", portfolioHandler.Update)
	portfolioAdmin.DELETE("/:id", portfolioHandler.Delete)

	// Contact routes: public submission, admin triage
	contact := api.Group("/contact")
	contact.POST("", contactHandler.Create)
	contactAdmin := contact.Group("", authenticate, mw.RequirePermission(mw.PermManageContacts))
	contactAdmin.GET("", contactHandler.List)
	contactAdmin.GET("/:id", contactHandler.Get)
	contactAdmin.PUT("/:id", contactHandler.UpdateStatus)

	// User routes: admin only throughout
	users := api.Group("/users", authenticate, mw.RequirePermission(mw.PermManageUsers))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handler.Response
// @Router /health [get]
func Health(c echo.Context) error {
	resp := handler.MessageResponse("Server is running")
	resp.Data = map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	return c.JSON(http.StatusOK, resp)
}

// RateLimiter throttles clients by IP: max requests per window, 429 past the
// limit, recovery once the window elapses.
func RateLimiter(max int, window time.Duration) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(max) / window.Seconds()),
			Burst:     max,
			ExpiresIn: window,
		}),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
		},
	})
}

// HTTPErrorHandler normalizes every error into the response envelope.
// Unexpected errors become a generic 500 so internals never leak.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		resp := handler.ErrorResponse(ve.Error())
		resp.Errors = ve.Fields
		_ = c.JSON(http.StatusBadRequest, resp)
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusNotFound {
			message = "Route not found"
		}
		if he.Code >= http.StatusInternalServerError {
			c.Logger().Error(err)
			message = "Server error"
		}
		_ = c.JSON(he.Code, handler.ErrorResponse(message))
		return
	}

	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.StatusCode >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	_ = c.JSON(mapped.StatusCode, handler.ErrorResponse(mapped.Message))
}

// CustomValidator wraps validator for Echo and translates tag failures into
// per-field messages.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return apperrors.NewValidationError(fields)
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters or items"
	case "max":
		return "Cannot be more than " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "url":
		return "Must be a valid URL"
	default:
		return "Invalid value"
	}
}
