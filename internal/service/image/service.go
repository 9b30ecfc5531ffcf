// Package image persists transformation results and enforces that only the
// author of a record may change or remove it.
package image

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

type imageRepo interface {
	Create(ctx context.Context, img *domain.Image) (*domain.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	Update(ctx context.Context, img *domain.Image) (*domain.Image, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) (bool, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Image, int, error)
}

type userRepo interface {
	GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error)
}

// viewCache holds rendered views keyed by path.
type viewCache interface {
	GetImage(ctx context.Context, path string) (*domain.Image, bool, error)
	SetImage(ctx context.Context, path string, img *domain.Image) error
	Revalidate(ctx context.Context, path string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements image record operations.
type Service struct {
	log    *slog.Logger
	images imageRepo
	users  userRepo
	views  viewCache
	tx     txManager
	clock  clockz.Clock
}

// NewService creates a new image service instance.
func NewService(logger *slog.Logger, images imageRepo, users userRepo, views viewCache, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "image"),
		images: images,
		users:  users,
		views:  views,
		tx:     tx,
		clock:  clockz.RealClock,
	}
}

// revalidate drops cached views for paths. Failures are logged and never
// fail the mutation that triggered them.
func (s *Service) revalidate(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := s.views.Revalidate(ctx, p); err != nil {
			s.log.WarnContext(ctx, "revalidate view failed",
				slog.String("path", p),
				slog.String("error", err.Error()))
		}
	}
}
