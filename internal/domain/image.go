package domain

import (
	"time"

	"github.com/google/uuid"
)

// Image is a persisted transformation result owned by a single user.
type Image struct {
	ID                 uuid.UUID
	Title              string
	TransformationType TransformationKind
	PublicID           string
	SecureURL          string
	Width              *int
	Height             *int
	Config             *Configuration
	TransformationURL  *string
	AspectRatio        *string
	Color              *string
	Prompt             *string
	AuthorID           uuid.UUID
	// Author is populated only by reads that join the owning user.
	Author    *Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Path returns the canonical location of the image record.
func (i *Image) Path() string {
	return ImagePath(i.ID)
}

// ImagePath returns the canonical location for an image ID.
func ImagePath(id uuid.UUID) string {
	return "/transformations/" + id.String()
}

// HomePath is where callers navigate after a record is deleted.
const HomePath = "/"

// RenderRequest describes one rendering of an uploaded source image.
type RenderRequest struct {
	Src    string // public ID of the uploaded source
	Width  int
	Height int
	Config *Configuration
}
