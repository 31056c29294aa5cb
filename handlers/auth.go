package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tohahpro/trendNest-server/config"
	"github.com/tohahpro/trendNest-server/utils"
)

type tokenRequest struct {
	Email string `json:"email"`
}

// IssueToken signs a one-hour token for the posted identity. The token
// goes out both ways the client snapshots expect: as an httpOnly cookie
// and in the response body for bearer use.
func IssueToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required"})
	}

	token, err := utils.GenerateJWT(req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	c.SetCookie(tokenCookie(token, time.Now().Add(utils.TokenTTL)))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

// Logout clears the auth cookie. Bearer clients just drop the token.
func Logout(c echo.Context) error {
	cookie := tokenCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func tokenCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
	// Cross-site frontends need SameSite=None, which browsers only
	// accept over HTTPS.
	if config.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
