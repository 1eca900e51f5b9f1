package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

// GenerateJWTToken issues the HS256-signed bearer token the server hands out
// on login and registration. The user ID travels in the subject (sub) claim
// as a decimal string; iss/iat/exp carry issuer, issue time and expiry.
// issuer, tokenDuration and signKey must all be set.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString (signature against
// tokenSignKey, issuer against tokenIssuer, expiry) and extracts the user ID
// from the subject claim. Expired tokens surface the wrapped
// jwt.ErrTokenExpired so the auth middleware can report them distinctly.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("validating token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("reading token subject: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("token subject is empty")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("token subject is not a user id: %w", err)
	}

	return models.Token{Token: token, UserID: userID}, nil
}

