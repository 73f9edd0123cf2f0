// Package auth mints and verifies the stateless session tokens presented on
// every authenticated request. Tokens are HS256-signed JWTs carrying the
// principal id as the subject; there is no revocation mechanism, so a leaked
// signing secret compromises every issued and future token until rotated.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/Werffios/AntilleanController/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed token for the given principal id with claims
// {sub, iat, exp}. Validity is counted from the moment of issuance.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token signature and expiry and returns the
// principal id from the sub claim. An expired token yields ErrTokenExpired;
// any other failure (bad signature, malformed token, missing or non-numeric
// sub) yields ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}
