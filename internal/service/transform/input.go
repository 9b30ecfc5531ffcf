package transform

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// StartInput opens a session. A nil ImageID starts a new record (Add mode);
// otherwise the session edits the record with that ID (Update mode).
type StartInput struct {
	UserID  uuid.UUID
	Kind    domain.TransformationKind
	ImageID *uuid.UUID
}

// Validate validates the start input.
func (i StartInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown transformation type"})
	}
	if i.ImageID != nil && *i.ImageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "image_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadResult is what the upload widget reports for a finished upload.
type UploadResult struct {
	PublicID  string
	SecureURL string
	Width     int
	Height    int
}

// Validate validates the upload result.
func (u UploadResult) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(u.PublicID) == "" {
		errs = append(errs, domain.FieldError{Field: "publicId", Message: "required"})
	}
	if strings.TrimSpace(u.SecureURL) == "" {
		errs = append(errs, domain.FieldError{Field: "secureURL", Message: "required"})
	}
	if u.Width < 0 {
		errs = append(errs, domain.FieldError{Field: "width", Message: "must be >= 0"})
	}
	if u.Height < 0 {
		errs = append(errs, domain.FieldError{Field: "height", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
