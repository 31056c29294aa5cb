package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := GenerateJWT("a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestValidateJWTIsIdempotent(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := GenerateJWT("a@x.com")
	assert.NoError(t, err)

	first, err := ValidateJWT(token)
	assert.NoError(t, err)
	second, err := ValidateJWT(token)
	assert.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	expired := &Claims{
		Email: "a@x.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsMalformedToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	token, err := GenerateJWT("a@x.com")
	assert.NoError(t, err)

	t.Setenv("ACCESS_TOKEN_SECRET", "another-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
