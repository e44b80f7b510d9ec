package validator

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"billboard/internal/domain"
)

// Limits holds the maximum lengths, in runes, of user supplied text.
type Limits struct {
	SubmissionMaxLength  int
	CommentMaxLength     int
	DisplayNameMaxLength int
}

// Validator provides validation methods for domain entities.
type Validator struct {
	limits Limits
}

// NewValidator creates a new Validator instance.
func NewValidator(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// ValidateSubmission validates a Submission before it is stored.
func (v *Validator) ValidateSubmission(s *domain.Submission) error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.UserID,
			validation.Required.Error("user_id_required"),
		),
		validation.Field(&s.UserName,
			validation.Required.Error("user_name_required"),
			validation.RuneLength(1, v.limits.DisplayNameMaxLength).Error("user_name_too_long"),
		),
		validation.Field(&s.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(1, v.limits.SubmissionMaxLength).Error("content_too_long"),
		),
		validation.Field(&s.ImageURL,
			validation.NilOrNotEmpty.Error("image_url_empty"),
			is.URL.Error("invalid_image_url"),
			validation.By(absoluteHTTPURL),
		),
	)
	return toDomainError(err)
}

// ValidateComment validates a Comment before it is stored.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SubmissionID,
			validation.Required.Error("submission_id_required"),
			is.UUID.Error("invalid_submission_id"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("user_id_required"),
		),
		validation.Field(&c.UserName,
			validation.Required.Error("user_name_required"),
			validation.RuneLength(1, v.limits.DisplayNameMaxLength).Error("user_name_too_long"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(1, v.limits.CommentMaxLength).Error("content_too_long"),
		),
	)
	return toDomainError(err)
}

// ClampDisplayName cuts a provider-supplied display name to the display name
// limit. Names typed by the caller are validated instead.
func (v *Validator) ClampDisplayName(name string) string {
	runes := []rune(name)
	if v.limits.DisplayNameMaxLength > 0 && len(runes) > v.limits.DisplayNameMaxLength {
		return string(runes[:v.limits.DisplayNameMaxLength])
	}
	return name
}

// absoluteHTTPURL rejects URLs without an http(s) scheme and host.
func absoluteHTTPURL(value interface{}) error {
	var raw string
	switch u := value.(type) {
	case string:
		raw = u
	case *string:
		if u == nil {
			return nil
		}
		raw = *u
	default:
		return nil
	}
	if raw == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return validation.NewError("image_url_not_http", "must be an absolute http or https URL")
	}
	return nil
}

// toDomainError converts ozzo validation errors to a domain.ValidationError.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
