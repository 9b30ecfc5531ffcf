package image

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

const (
	// TitleMinLen and TitleMaxLen bound an image title, in characters.
	TitleMinLen = 2
	TitleMaxLen = 50

	defaultListLimit = 9
	maxListLimit     = 50
)

// Payload is the full replaceable content of an image record.
type Payload struct {
	Title              string
	TransformationType domain.TransformationKind
	PublicID           string
	SecureURL          string
	Width              *int
	Height             *int
	Config             *domain.Configuration
	TransformationURL  *string
	AspectRatio        *string
	Color              *string
	Prompt             *string
}

// ValidateTitle reports a field error for a title outside the allowed length.
func ValidateTitle(title string) *domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n < TitleMinLen || n > TitleMaxLen {
		return &domain.FieldError{Field: "title", Message: "must be between 2 and 50 characters"}
	}
	return nil
}

func (p Payload) validate() []domain.FieldError {
	var errs []domain.FieldError

	if fe := ValidateTitle(p.Title); fe != nil {
		errs = append(errs, *fe)
	}
	if !p.TransformationType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "transformationType", Message: "unknown transformation type"})
	}
	if strings.TrimSpace(p.PublicID) == "" {
		errs = append(errs, domain.FieldError{Field: "publicId", Message: "required"})
	}
	if strings.TrimSpace(p.SecureURL) == "" {
		errs = append(errs, domain.FieldError{Field: "secureURL", Message: "required"})
	}
	if p.Width != nil && *p.Width < 0 {
		errs = append(errs, domain.FieldError{Field: "width", Message: "must be >= 0"})
	}
	if p.Height != nil && *p.Height < 0 {
		errs = append(errs, domain.FieldError{Field: "height", Message: "must be >= 0"})
	}

	return errs
}

// CreateInput holds parameters for creating an image record.
type CreateInput struct {
	Payload
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for replacing an image record.
type UpdateInput struct {
	ID uuid.UUID
	Payload
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	errs := i.validate()
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination for an author's images. Zero Limit means the default.
type ListInput struct {
	AuthorID uuid.UUID
	Limit    int
	Offset   int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 50"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return defaultListLimit
	}
	return i.Limit
}

// ListResult is one page of images.
type ListResult struct {
	Images []domain.Image
	Total  int
}
