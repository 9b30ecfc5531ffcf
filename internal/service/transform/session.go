package transform

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"github.com/heartmarshall/imagecraft-backend/pkg/debounce"
)

var errSessionClosed = fmt.Errorf("session closed: %w", domain.ErrNotFound)

// Session is one user's transformation form. It is safe for concurrent use;
// debounced edits land on timer goroutines and take the same lock.
type Session struct {
	id      uuid.UUID
	ownerID uuid.UUID
	kind    domain.TransformationType
	m       *Manager
	edits   *debounce.Group[domain.FormField]
	// triggers holds one debounced setter per text field of kind.
	triggers map[domain.FormField]func(string)

	mu           sync.Mutex
	state        State
	mode         domain.FormMode
	imageID      uuid.UUID
	form         Form
	source       Source
	draft        *domain.Configuration
	committed    *domain.Configuration
	transforming bool
	submitting   bool
	balance      *int
	notes        []Notification
	lastActive   time.Time
	closed       bool
}

// ID returns the session ID.
func (s *Session) ID() uuid.UUID { return s.id }

// ---------------------------------------------------------------------------
// Form edits
// ---------------------------------------------------------------------------

// Edit schedules a debounced change of a text field. Each field has its own
// debouncer, so editing one field never drops a pending edit of another.
func (s *Session) Edit(field domain.FormField, value string) error {
	if field != domain.FieldPrompt && field != domain.FieldColor {
		return domain.NewValidationError(field.String(), "not a debounced field")
	}
	if !s.kind.HasField(field) {
		return domain.NewValidationError(field.String(), "not available for "+s.kind.Kind.String())
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errSessionClosed
	}
	s.touchLocked()
	s.mu.Unlock()

	s.triggers[field](value)
	return nil
}

// bindEditTriggers creates the debounced setter of every text field the kind
// exposes.
func (s *Session) bindEditTriggers() {
	s.triggers = make(map[domain.FormField]func(string))
	for _, field := range []domain.FormField{domain.FieldPrompt, domain.FieldColor} {
		if !s.kind.HasField(field) {
			continue
		}
		field := field
		s.triggers[field] = debounce.Trigger(s.edits.Debouncer(field), func(value string) {
			s.commitEdit(field, value)
		})
	}
}

// commitEdit writes a debounced field value into the form and the draft.
func (s *Session) commitEdit(field domain.FormField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	draft := s.draft.Clone()
	if draft == nil {
		draft = s.kind.DefaultConfiguration()
	}

	switch s.kind.Kind {
	case domain.KindRecolor:
		if draft.Recolor == nil {
			draft.Recolor = &domain.RecolorConfig{}
		}
		if field == domain.FieldColor {
			s.form.Color = value
			draft.Recolor.To = &value
		} else {
			s.form.Prompt = value
			draft.Recolor.Prompt = &value
		}
	case domain.KindRemove:
		if draft.Remove == nil {
			draft.Remove = &domain.RemoveConfig{}
		}
		s.form.Prompt = value
		draft.Remove.Prompt = &value
	default:
		return
	}

	s.draft = draft
	s.markEditedLocked()
	s.touchLocked()
}

// SetTitle updates the record title. It does not affect the draft.
func (s *Session) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}
	s.form.Title = title
	s.touchLocked()
	return nil
}

// SelectAspectRatio resizes the source to a preset and stages the matching
// fill configuration. Only the fill kind has an aspect ratio.
func (s *Session) SelectAspectRatio(key string) error {
	if !s.kind.HasField(domain.FieldAspectRatio) {
		return domain.NewValidationError(domain.FieldAspectRatio.String(), "not available for "+s.kind.Kind.String())
	}
	opt, ok := domain.LookupAspectRatio(key)
	if !ok {
		return domain.NewValidationError(domain.FieldAspectRatio.String(), "unknown aspect ratio")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}

	s.form.AspectRatio = opt.Key
	s.source.AspectRatio = opt.AspectRatio
	s.source.Width = opt.Width
	s.source.Height = opt.Height

	patch := &domain.Configuration{Fill: &domain.FillConfig{
		AspectRatio: &opt.AspectRatio,
		Width:       &opt.Width,
		Height:      &opt.Height,
	}}
	s.draft = domain.MergeConfiguration(patch, s.draft)
	s.markEditedLocked()
	s.touchLocked()
	return nil
}

// ---------------------------------------------------------------------------
// Upload widget
// ---------------------------------------------------------------------------

// AttachUpload binds a finished upload as the session's source image. Kinds
// with no form fields stage their default configuration at this point.
func (s *Session) AttachUpload(res UploadResult) error {
	if err := res.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}

	s.form.PublicID = res.PublicID
	s.source.PublicID = res.PublicID
	s.source.SecureURL = res.SecureURL
	s.source.Width = res.Width
	s.source.Height = res.Height

	if len(s.kind.Fields) == 0 && s.draft.IsEmpty() {
		s.draft = s.kind.DefaultConfiguration()
		s.markEditedLocked()
	}

	s.notifyLocked(NotificationSuccess, "Image uploaded successfully", "")
	s.touchLocked()
	return nil
}

// ReportUploadError records a failed upload. The configuration is untouched.
func (s *Session) ReportUploadError(reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}

	s.notifyLocked(NotificationError, "Something went wrong while uploading", "Please try again")
	s.touchLocked()
	return fmt.Errorf("transform.ReportUploadError: %w: %s", domain.ErrUploadFailed, reason)
}

// ---------------------------------------------------------------------------
// Snapshot
// ---------------------------------------------------------------------------

// Snapshot returns a copy of the session. With drain set, pending
// notifications are handed over and cleared.
func (s *Session) Snapshot(drain bool) Snapshot {
	pending := s.edits.Pending()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:           s.id,
		OwnerID:      s.ownerID,
		Kind:         s.kind.Kind,
		Mode:         s.mode,
		State:        s.state,
		Form:         s.form,
		Source:       s.source,
		Draft:        s.draft.Clone(),
		Committed:    s.committed.Clone(),
		Transforming: s.transforming,
		Submitting:   s.submitting,
		PendingEdits: pending,
		CanApply:     s.canApplyLocked(),
		CanSave:      s.canSaveLocked() == nil,
		LastActive:   s.lastActive,
	}
	if s.mode == domain.FormModeUpdate {
		id := s.imageID
		snap.ImageID = &id
	}
	if s.balance != nil {
		b := *s.balance
		snap.Balance = &b
	}
	if len(s.notes) > 0 {
		snap.Notifications = append([]Notification(nil), s.notes...)
		if drain {
			s.notes = nil
		}
	}

	return snap
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// seed loads a stored record into a fresh session.
func (s *Session) seed(img *domain.Image) {
	s.mode = domain.FormModeUpdate
	s.imageID = img.ID
	s.state = StateSaved
	s.committed = img.Config.Clone()

	s.form = Form{
		Title:       img.Title,
		AspectRatio: deref(img.AspectRatio),
		Color:       deref(img.Color),
		Prompt:      deref(img.Prompt),
		PublicID:    img.PublicID,
	}
	s.source = Source{
		PublicID:    img.PublicID,
		SecureURL:   img.SecureURL,
		Width:       deref(img.Width),
		Height:      deref(img.Height),
		AspectRatio: deref(img.AspectRatio),
	}
}

// markEditedLocked moves the session to Editing unless an apply or save is
// in flight; those settle the state themselves when they return.
func (s *Session) markEditedLocked() {
	if s.state == StatePendingApply || s.state == StateSubmitting {
		return
	}
	s.state = StateEditing
}

func (s *Session) canApplyLocked() bool {
	return !s.closed && !s.transforming && !s.submitting && !s.draft.IsEmpty()
}

// canSaveLocked returns why Save would be refused, or nil.
func (s *Session) canSaveLocked() error {
	if s.closed {
		return errSessionClosed
	}
	if s.transforming || s.submitting {
		return fmt.Errorf("%w: session is busy", domain.ErrConflict)
	}
	if s.state != StateApplied && s.state != StateSaved {
		return fmt.Errorf("%w: apply a transformation before saving", domain.ErrConflict)
	}

	var errs []domain.FieldError
	if fe := image.ValidateTitle(s.form.Title); fe != nil {
		errs = append(errs, *fe)
	}
	if s.form.PublicID == "" {
		errs = append(errs, domain.FieldError{Field: "publicId", Message: "upload an image first"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (s *Session) notifyLocked(level NotificationLevel, title, message string) {
	s.notes = append(s.notes, Notification{
		Level:   level,
		Title:   title,
		Message: message,
		At:      s.m.clock.Now(),
	})
}

func (s *Session) touch() {
	s.mu.Lock()
	s.touchLocked()
	s.mu.Unlock()
}

func (s *Session) touchLocked() {
	s.lastActive = s.m.clock.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastActive)
}

func (s *Session) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transforming || s.submitting
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.edits.CancelAll()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
