package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"devfolio/internal/auth"
	apperrors "devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

const (
	claimsKey   = "claims"
	identityKey = "identity"
)

// Permission names a capability required by a route group.
type Permission string

const (
	PermManagePortfolio Permission = "portfolio:manage"
	PermManageContacts  Permission = "contacts:manage"
	PermManageUsers     Permission = "users:manage"
)

// rolePermissions maps each role to its capability set. Authorization is
// evaluated once here, at the gate, instead of per-controller role checks.
var rolePermissions = map[model.Role]map[Permission]bool{
	model.RoleUser: {},
	model.RoleAdmin: {
		PermManagePortfolio: true,
		PermManageContacts:  true,
		PermManageUsers:     true,
	},
}

// Authenticate is the first gate: it validates the bearer token and attaches
// the resolved user to the request context. Missing or invalid tokens, and
// tokens for deactivated accounts, short-circuit with Unauthorized.
func Authenticate(jwtService *auth.JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.VerifyToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrUnauthorized
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			if !ok {
				return apperrors.ErrUnauthorized
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || !user.IsActive {
				return apperrors.ErrUnauthorized
			}

			c.Set(identityKey, user)
			return next(c)
		})
	}
}

// RequirePermission is the second gate: the attached identity's role must
// grant the permission, otherwise the request short-circuits with Forbidden.
func RequirePermission(p Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return apperrors.ErrUnauthorized
			}
			if !rolePermissions[user.Role][p] {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by Authenticate, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(identityKey).(*model.User)
	return user
}
