package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/tohahpro/trendNest-server/config"
)

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenTTL is how long an issued token stays valid. There is no refresh
// path; expiry forces the client back through POST /jwt.
const TokenTTL = time.Hour

func GenerateJWT(email string) (string, error) {
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("ACCESS_TOKEN_SECRET", "")))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv("ACCESS_TOKEN_SECRET", "")), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}
