package transform

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// State is a session's position in the edit, apply and save lifecycle.
type State string

const (
	StateIdle         State = "idle"
	StateEditing      State = "editing"
	StatePendingApply State = "pending_apply"
	StateApplied      State = "applied"
	StateSubmitting   State = "submitting"
	StateSaved        State = "saved"
)

func (s State) String() string { return string(s) }

// Form holds the values the user typed or picked.
type Form struct {
	Title       string
	AspectRatio string
	Color       string
	Prompt      string
	PublicID    string
}

// Source is the uploaded image the transformation renders from.
type Source struct {
	PublicID    string
	SecureURL   string
	Width       int
	Height      int
	AspectRatio string
}

// NotificationLevel classifies a user notification.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a transient message for the user, drained by Snapshot.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
	At      time.Time
}

// Snapshot is a point-in-time copy of a session. It shares no memory with
// the session it was taken from.
type Snapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Kind    domain.TransformationKind
	Mode    domain.FormMode
	// ImageID is set once the session is bound to a stored record.
	ImageID *uuid.UUID
	State   State

	Form      Form
	Source    Source
	Draft     *domain.Configuration
	Committed *domain.Configuration

	Transforming bool
	Submitting   bool
	PendingEdits bool
	CanApply     bool
	CanSave      bool

	// Balance is the credit balance reported by the last successful apply.
	Balance       *int
	Notifications []Notification
	LastActive    time.Time
}
