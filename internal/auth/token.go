// Package auth verifies bearer tokens issued by the identity provider.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"billboard/internal/domain"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature, expiry, or claim checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotConfigured is returned when no signing secret is configured.
	ErrNotConfigured = errors.New("token verification not configured")
)

// Claims are the identity provider's session token claims.
type Claims struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 session tokens and maps them to identities.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier. An empty issuer disables the issuer check.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses token and returns the caller identity.
func (v *Verifier) Verify(token string) (domain.Identity, error) {
	if len(v.secret) == 0 {
		return domain.Identity{}, ErrNotConfigured
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	name := claims.Username
	if name == "" {
		name = claims.FirstName
	}

	return domain.Identity{UserID: claims.Subject, DisplayName: name}, nil
}

// Issue signs a token for identity that expires after ttl. Used by tests and local tooling.
func (v *Verifier) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrNotConfigured
	}

	now := time.Now()
	claims := Claims{
		Username: identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
