package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/phvlkn/CookBook/entity"

	jwt "github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL applies when a caller has no reason to pick its own
// lifetime. The login flow issues longer-lived tokens explicitly.
const DefaultTokenTTL = 15 * time.Minute

// Claims defines the structure of the JWT payload. The user's email is
// the identity claim.
type Claims struct {
	Email string `json:"sub"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed token embedding the email claim, expiring
// ttl after issuance.
func GenerateJWT(email string, ttl time.Duration, jwtSecretKey []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "cookbook",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ValidateJWT verifies the token signature and expiry and returns the
// embedded email claim. Failures map onto the auth error taxonomy:
// entity.ErrTokenExpired, entity.ErrTokenInvalid, entity.ErrTokenMalformed.
func ValidateJWT(tokenString string, jwtSecretKey []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", entity.ErrTokenExpired
		}
		return "", entity.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", entity.ErrTokenInvalid
	}
	if claims.Email == "" {
		return "", entity.ErrTokenMalformed
	}
	return claims.Email, nil
}
