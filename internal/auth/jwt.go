package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a signed JWT for an authenticated session. The
// claims carry the username as subject plus the role, which the
// middleware uses for admin gating without a second lookup.
func GenerateToken(secret []byte, username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"exp":  time.Now().Add(expiry).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates a token string and returns the
// username and role it carries.
func ValidateToken(secret []byte, tokenString string) (username, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err // expired, malformed, bad signature
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	username, ok = claims["sub"].(string)
	if !ok || username == "" {
		return "", "", errors.New("invalid subject claim")
	}
	role, _ = claims["role"].(string)
	return username, role, nil
}
