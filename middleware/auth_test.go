package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tohahpro/trendNest-server/utils"
)

// gatedHandler records whether the gate let the request through and
// echoes the verified email so pass-through can be asserted.
func gatedHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.JSON(http.StatusOK, map[string]string{"email": CallerEmail(c)})
	}
}

func runVerifyToken(t *testing.T, decorate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := VerifyToken(gatedHandler(&called))(c)
	assert.NoError(t, err)

	return rec, called
}

func TestVerifyTokenMissingToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	rec, called := runVerifyToken(t, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
	assert.False(t, called, "handler must not run without a token")
}

func TestVerifyTokenMalformedToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	rec, called := runVerifyToken(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestVerifyTokenBadAuthorizationScheme(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := utils.GenerateJWT("a@x.com")
	assert.NoError(t, err)

	rec, called := runVerifyToken(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic "+token)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestVerifyTokenBearerHeader(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := utils.GenerateJWT("a@x.com")
	assert.NoError(t, err)

	rec, called := runVerifyToken(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

func TestVerifyTokenCookie(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := utils.GenerateJWT("a@x.com")
	assert.NoError(t, err)

	rec, called := runVerifyToken(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

// Missing and invalid tokens must be indistinguishable to the caller.
func TestVerifyTokenDenialIsGeneric(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	missing, _ := runVerifyToken(t, nil)
	invalid, _ := runVerifyToken(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	assert.Equal(t, missing.Code, invalid.Code)
	assert.JSONEq(t, missing.Body.String(), invalid.Body.String())
}
