package utils

import (
	"aesthetics-service/internal/pkg/constvars"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func GenerateSessionJWT(sessionID, providerID, secret string, expiryInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimSessionID:  sessionID,
		constvars.JWTClaimProviderID: providerID,
		constvars.JWTClaimExpiry:     time.Now().Add(time.Duration(expiryInHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionJWT returns the session ID carried by a token signed with secret.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.JWTClaimSessionID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", errors.New(constvars.ErrDevAuthTokenInvalidOrExpired)
}
