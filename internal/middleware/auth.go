package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"billboard/internal/domain"
	"billboard/internal/logger"
)

// IdentityKey is the context key for the verified caller identity.
const IdentityKey = "identity"

// TokenVerifier maps a bearer token to a caller identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth resolves the caller identity from an optional "Authorization: Bearer" header.
// Requests without a valid token continue as anonymous; handlers that mutate
// state decide whether an identity is required.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			logger.WarnContext(c.Request.Context(), "Malformed authorization header")
			c.Next()
			return
		}

		identity, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.WarnContext(c.Request.Context(), "Rejected bearer token",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the caller identity, or the anonymous zero value.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(domain.Identity); ok {
			return identity
		}
	}
	return domain.Identity{}
}
