package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnonymousUserPrefix marks author ids synthesized for posts made without a signed-in identity.
const AnonymousUserPrefix = "anon_"

// DefaultDisplayName is used when neither the caller nor the identity provider supplies a name.
const DefaultDisplayName = "Anonymous"

// Submission represents a message posted to the billboard.
type Submission struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"image_url,omitempty"`
	IsPrimeTime   bool      `json:"is_prime_time"`
	IsFlashMoment bool      `json:"is_flash_moment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewAnonymousUserID returns a fresh synthetic author id for an anonymous submission.
func NewAnonymousUserID() string {
	return AnonymousUserPrefix + uuid.New().String()
}

// IsAnonymousUserID reports whether id was synthesized for an anonymous author.
func IsAnonymousUserID(id string) bool {
	return strings.HasPrefix(id, AnonymousUserPrefix)
}
