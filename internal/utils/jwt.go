package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-light-wallet/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 control API token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the wallet instance that issued the token
//   - Subject   (sub): the operator name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
//	token, err := utils.GenerateJWTToken("go-light-wallet", "ops", time.Hour, "secret")
func GenerateJWTToken(issuer, operator string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || operator == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   operator,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Operator:         operator,
	}, nil
}

// ValidateAndParseJWTToken validates the given token string and extracts
// the operator from its subject.
//
// Validation includes the HS256 signature, the issuer claim, the expiration
// claim and a non-empty subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Operator:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
