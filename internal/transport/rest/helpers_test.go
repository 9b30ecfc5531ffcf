package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/imagecraft-backend/internal/config"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/credit"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"github.com/heartmarshall/imagecraft-backend/internal/service/transform"
	"github.com/heartmarshall/imagecraft-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

// uuidTokens accepts any UUID as a bearer token for that user.
type uuidTokens struct{}

func (uuidTokens) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return uuid.Parse(token)
}

type fakeLedger struct {
	mu      sync.Mutex
	balance int
	err     error
	calls   int
}

func (l *fakeLedger) Adjust(_ context.Context, _ uuid.UUID, delta int, _ domain.CreditReason) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return 0, l.err
	}
	if l.balance+delta < 0 {
		return 0, domain.ErrInsufficientCredit
	}
	l.balance += delta
	return l.balance, nil
}

// fakeImages is an in-memory image store shared by the session and image handlers.
type fakeImages struct {
	mu      sync.Mutex
	records map[uuid.UUID]*domain.Image
}

func newFakeImages() *fakeImages {
	return &fakeImages{records: make(map[uuid.UUID]*domain.Image)}
}

func (f *fakeImages) put(img *domain.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[img.ID] = img
}

func (f *fakeImages) Create(_ context.Context, ownerID uuid.UUID, in image.CreateInput) (*domain.Image, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	img := fromPayload(uuid.New(), ownerID, in.Payload)
	f.put(img)
	return img, nil
}

func (f *fakeImages) Update(_ context.Context, ownerID uuid.UUID, in image.UpdateInput) (*domain.Image, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	existing, ok := f.records[in.ID]
	f.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if existing.AuthorID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	img := fromPayload(in.ID, ownerID, in.Payload)
	f.put(img)
	return img, nil
}

func (f *fakeImages) GetByID(_ context.Context, id uuid.UUID) (*domain.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return img, nil
}

func fromPayload(id, ownerID uuid.UUID, p image.Payload) *domain.Image {
	now := time.Now()
	return &domain.Image{
		ID:                 id,
		Title:              p.Title,
		TransformationType: p.TransformationType,
		PublicID:           p.PublicID,
		SecureURL:          p.SecureURL,
		Width:              p.Width,
		Height:             p.Height,
		Config:             p.Config,
		TransformationURL:  p.TransformationURL,
		AspectRatio:        p.AspectRatio,
		Color:              p.Color,
		Prompt:             p.Prompt,
		AuthorID:           ownerID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

type fakeRenderer struct{}

func (fakeRenderer) Build(_ context.Context, req domain.RenderRequest) (string, error) {
	return "https://render.test/" + req.Src, nil
}

type nopRecorder struct{}

func (nopRecorder) ApplySucceeded(domain.TransformationKind)      {}
func (nopRecorder) ApplyFailed(domain.TransformationKind, string) {}
func (nopRecorder) ImageSaved(domain.FormMode)                    {}
func (nopRecorder) SessionsActive(int)                            {}

type fakeImageService struct {
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	listFunc   func(ctx context.Context, in image.ListInput) (*image.ListResult, error)
	deleteFunc func(ctx context.Context, ownerID, id uuid.UUID) (string, error)
}

func (f *fakeImageService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	return f.getFunc(ctx, id)
}

func (f *fakeImageService) ListByAuthor(ctx context.Context, in image.ListInput) (*image.ListResult, error) {
	return f.listFunc(ctx, in)
}

func (f *fakeImageService) Delete(ctx context.Context, ownerID, id uuid.UUID) (string, error) {
	return f.deleteFunc(ctx, ownerID, id)
}

type fakeProfiles struct {
	user *domain.User
	err  error
}

func (f *fakeProfiles) GetProfile(context.Context) (*domain.User, error) { return f.user, f.err }

type fakeCredits struct {
	balance int
	rows    []domain.CreditTransaction
	history []credit.HistoryInput
}

func (f *fakeCredits) Balance(context.Context, uuid.UUID) (int, error) { return f.balance, nil }

func (f *fakeCredits) History(_ context.Context, in credit.HistoryInput) ([]domain.CreditTransaction, error) {
	f.history = append(f.history, in)
	return f.rows, nil
}

// ---------------------------------------------------------------------------
// Test server
// ---------------------------------------------------------------------------

type testEnv struct {
	handler  http.Handler
	ledger   *fakeLedger
	images   *fakeImages
	service  *fakeImageService
	profiles *fakeProfiles
	credits  *fakeCredits
	sessions *transform.Manager
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := discardLogger()
	env := &testEnv{
		ledger:   &fakeLedger{balance: 10},
		images:   newFakeImages(),
		profiles: &fakeProfiles{},
		credits:  &fakeCredits{},
	}
	env.service = &fakeImageService{
		getFunc: env.images.GetByID,
		listFunc: func(context.Context, image.ListInput) (*image.ListResult, error) {
			return &image.ListResult{}, nil
		},
		deleteFunc: func(context.Context, uuid.UUID, uuid.UUID) (string, error) {
			return domain.HomePath, nil
		},
	}
	env.sessions = transform.NewManager(log, config.TransformConfig{
		CreditFee:       1,
		EditDebounce:    time.Hour,
		SessionTTL:      time.Hour,
		JanitorInterval: time.Minute,
	}, env.ledger, env.images, fakeRenderer{}, nopRecorder{})

	env.handler = NewRouter(Handlers{
		Health:   NewHealthHandler("test", nil),
		Sessions: NewSessionHandler(env.sessions, log),
		Images:   NewImageHandler(env.service, log),
		Me:       NewMeHandler(env.profiles, env.credits, log),
	}, RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Auth(uuidTokens{}),
		},
		Protected: []middleware.Middleware{
			middleware.RequireUser("/sign-in"),
		},
	})
	return env
}

// do sends a JSON request as user (uuid.Nil for anonymous).
func (e *testEnv) do(t *testing.T, user uuid.UUID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+user.String())
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

var errBoom = errors.New("boom")
