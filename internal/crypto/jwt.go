package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passcheck"
	tokenAudience = "passcheck-api"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrEmptySubject   = errors.New("token subject is required")
	ErrSecretRequired = errors.New("token secret is required")
)

// Claims represents the JWT claims carried by API client tokens.
type Claims struct {
	jwt.RegisteredClaims
	Client string `json:"client"`
}

// GenerateToken creates a signed JWT token for the named API client.
func GenerateToken(client, secret string, expiry time.Duration) (string, error) {
	if client == "" {
		return "", ErrEmptySubject
	}
	if secret == "" {
		return "", ErrSecretRequired
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   client,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Client: client,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
