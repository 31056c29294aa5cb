package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RoleLookup resolves the stored role for a verified email. Production
// wiring points this at the users collection; tests inject their own.
type RoleLookup func(ctx context.Context, email string) (string, error)

// RequireRole is the authorization gate. It always runs after
// VerifyToken and compares the caller's stored role against exactly one
// required role. There is no hierarchy: an admin does not pass a
// moderator gate.
func RequireRole(role string, lookup RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := CallerEmail(c)
			if email == "" {
				return c.JSON(http.StatusForbidden, map[string]interface{}{"message": "forbidden access"})
			}

			stored, err := lookup(c.Request().Context(), email)
			if err != nil || stored != role {
				return c.JSON(http.StatusForbidden, map[string]interface{}{"message": "forbidden access"})
			}

			return next(c)
		}
	}
}
