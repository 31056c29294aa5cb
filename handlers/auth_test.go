package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tohahpro/trendNest-server/utils"
)

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	return rec
}

func TestIssueTokenSetsCookieAndBody(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("NODE_ENV", "development")

	rec := postJSON(t, IssueToken, "/jwt", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"token"`)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	claims, err := utils.ValidateJWT(cookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenProductionCookieAttributes(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("NODE_ENV", "production")

	rec := postJSON(t, IssueToken, "/jwt", `{"email":"a@x.com"}`)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	rec := postJSON(t, IssueToken, "/jwt", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	rec := postJSON(t, Logout, "/logout", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
