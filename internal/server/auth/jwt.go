// Package auth issues and validates the signed namespace tokens that gate
// every data operation.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storserv/storserv/internal/common"
)

// Claims is the token claim set: the registered claims plus the storage
// namespace the token authorizes access to.
type Claims struct {
	jwt.RegisteredClaims
	Namespace string `json:"namespace"`
}

// validMethods restricts parsing to the one scheme tokens are signed with.
// Tokens whose header claims "none" or an asymmetric algorithm are rejected
// outright, which closes the usual algorithm-confusion hole for HMAC secrets.
var validMethods = []string{jwt.SigningMethodHS256.Alg()}

func GenerateToken(namespace string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Namespace: namespace,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetNamespaceFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods(validMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Namespace == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Namespace, nil
}
