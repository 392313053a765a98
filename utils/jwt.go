package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// AccessTokenTTL is the fixed lifetime of every issued access token.
const AccessTokenTTL = time.Hour

var (
	// ErrMissingToken means the request carried no bearer token at all.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken means a token was supplied but failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager issues and verifies HS256 access tokens bound to an email claim.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with the given secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: AccessTokenTTL}
}

// GenerateToken creates a signed JWT carrying the email claim.
func (m *TokenManager) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token string and returns its email claim.
func (m *TokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: token does not contain a valid 'email' claim", ErrInvalidToken)
	}
	return email, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}
	scheme, tokenString, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
	tokenString = strings.TrimSpace(tokenString)
	if !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return "", ErrMissingToken
	}
	return tokenString, nil
}
