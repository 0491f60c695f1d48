package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "devfolio/internal/errors"
	"devfolio/internal/middleware"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest represents a partial self-update. Absent fields retain
// their prior values.
type ProfileRequest struct {
	Name        string             `json:"name" validate:"omitempty,max=255"`
	Email       string             `json:"email" validate:"omitempty,email"`
	Bio         string             `json:"bio" validate:"omitempty,max=500"`
	SocialLinks *model.SocialLinks `json:"social_links"`
}

// AuthData is the identity-plus-token payload returned on register and login.
type AuthData struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, DataResponse(AuthData{User: user, Token: token}))
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(AuthData{User: user, Token: token}))
}

// Me godoc
// @Summary Get the authenticated identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperrors.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, DataResponse(user))
}

// UpdateProfile godoc
// @Summary Partially update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperrors.ErrUnauthorized
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), user.ID, service.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DataResponse(updated))
}

// Logout godoc
// @Summary Logout (stateless acknowledgment)
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Tokens are self-contained and expire naturally; there is no server-side
	// session to invalidate.
	return c.JSON(http.StatusOK, MessageResponse("Logged out successfully"))
}
