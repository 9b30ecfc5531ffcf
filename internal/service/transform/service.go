// Package transform runs transformation form sessions: debounced field
// edits accumulate into a draft, Apply merges the draft into the committed
// configuration and charges credits, and Save persists the result.
package transform

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"github.com/heartmarshall/imagecraft-backend/pkg/debounce"
)

// ledger adjusts user credit balances.
type ledger interface {
	Adjust(ctx context.Context, userID uuid.UUID, delta int, reason domain.CreditReason) (int, error)
}

// imageStore persists image records.
type imageStore interface {
	Create(ctx context.Context, ownerID uuid.UUID, in image.CreateInput) (*domain.Image, error)
	Update(ctx context.Context, ownerID uuid.UUID, in image.UpdateInput) (*domain.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
}

// renderer turns a source image and configuration into a delivery URL.
type renderer interface {
	Build(ctx context.Context, req domain.RenderRequest) (string, error)
}

type recorder interface {
	ApplySucceeded(kind domain.TransformationKind)
	ApplyFailed(kind domain.TransformationKind, cause string)
	ImageSaved(mode domain.FormMode)
	SessionsActive(n int)
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock for edit debouncing and session expiry.
func WithClock(clock clockz.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// Manager owns the in-memory transformation sessions.
type Manager struct {
	log      *slog.Logger
	credits  ledger
	images   imageStore
	renderer renderer
	metrics  recorder
	cfg      config.TransformConfig
	clock    clockz.Clock

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a new session manager.
func NewManager(
	logger *slog.Logger,
	cfg config.TransformConfig,
	credits ledger,
	images imageStore,
	renderer renderer,
	metrics recorder,
	opts ...Option,
) *Manager {
	m := &Manager{
		log:      logger.With("service", "transform"),
		credits:  credits,
		images:   images,
		renderer: renderer,
		metrics:  metrics,
		cfg:      cfg,
		clock:    clockz.RealClock,
		sessions: make(map[uuid.UUID]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start opens a session. In Update mode the record is loaded, its owner is
// checked, and the session starts Saved with the record's values.
func (m *Manager) Start(ctx context.Context, in StartInput) (*Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	kind, _ := domain.LookupTransformationType(in.Kind)
	s := m.newSession(in.UserID, kind)

	if in.ImageID != nil {
		img, err := m.images.GetByID(ctx, *in.ImageID)
		if err != nil {
			return nil, fmt.Errorf("transform.Start: %w", err)
		}
		if img.AuthorID != in.UserID {
			return nil, fmt.Errorf("transform.Start: %w", domain.ErrUnauthorized)
		}
		if img.TransformationType != in.Kind {
			return nil, domain.NewValidationError("type", "does not match the image transformation type")
		}
		s.seed(img)
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SessionsActive(n)

	m.log.InfoContext(ctx, "transform session started",
		slog.String("session_id", s.id.String()),
		slog.String("user_id", in.UserID.String()),
		slog.String("kind", in.Kind.String()),
		slog.String("mode", s.mode.String()))

	return s, nil
}

// Get returns the session if it exists and belongs to userID.
func (m *Manager) Get(userID, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("transform.Get: session %s: %w", id, domain.ErrNotFound)
	}
	if s.ownerID != userID {
		return nil, fmt.Errorf("transform.Get: %w", domain.ErrUnauthorized)
	}

	s.touch()
	return s, nil
}

// Close discards the session and its pending edits.
func (m *Manager) Close(ctx context.Context, userID, id uuid.UUID) error {
	s, err := m.Get(userID, id)
	if err != nil {
		return err
	}

	m.remove(s)

	m.log.InfoContext(ctx, "transform session closed",
		slog.String("session_id", id.String()),
		slog.String("user_id", userID.String()))

	return nil
}

// Len reports how many sessions are held.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *Manager) newSession(ownerID uuid.UUID, kind domain.TransformationType) *Session {
	s := &Session{
		id:         uuid.New(),
		ownerID:    ownerID,
		kind:       kind,
		m:          m,
		edits:      debounce.NewGroup[domain.FormField](m.cfg.EditDebounce, debounce.WithClock(m.clock)),
		state:      StateIdle,
		mode:       domain.FormModeAdd,
		lastActive: m.clock.Now(),
	}
	s.bindEditTriggers()
	return s
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s.id)
	n := len(m.sessions)
	m.mu.Unlock()

	s.close()
	m.metrics.SessionsActive(n)
}
