package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tohahpro/trendNest-server/utils"
)

// userContextKey is where the verified claims live on the echo context.
const userContextKey = "user"

// VerifyToken is the authentication gate. It accepts the token either
// from the httpOnly "token" cookie or from an Authorization bearer
// header. A missing token and an invalid one both get the same generic
// 401 so callers cannot probe which case they hit.
func VerifyToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{"message": "unauthorized access"})
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{"message": "unauthorized access"})
		}

		c.Set(userContextKey, claims)
		return next(c)
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// CallerClaims returns the claims VerifyToken attached, or nil when the
// route skipped the token gate.
func CallerClaims(c echo.Context) *utils.Claims {
	claims, _ := c.Get(userContextKey).(*utils.Claims)
	return claims
}

// CallerEmail is the verified email of the requester, empty when
// unauthenticated.
func CallerEmail(c echo.Context) string {
	if claims := CallerClaims(c); claims != nil {
		return claims.Email
	}
	return ""
}
