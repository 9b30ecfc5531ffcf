package image

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// GetByID returns a record with its author projection, served from the view
// cache when possible.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	path := domain.ImagePath(id)

	cached, ok, err := s.views.GetImage(ctx, path)
	if err != nil {
		s.log.WarnContext(ctx, "read cached view failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
	if ok {
		return cached, nil
	}

	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("image.GetByID: %w", err)
	}

	if err := s.views.SetImage(ctx, path, img); err != nil {
		s.log.WarnContext(ctx, "store cached view failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}

	return img, nil
}

// ListByAuthor returns one page of the author's records, newest first.
func (s *Service) ListByAuthor(ctx context.Context, in ListInput) (*ListResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	images, total, err := s.images.ListByAuthor(ctx, in.AuthorID, in.limit(), in.Offset)
	if err != nil {
		return nil, fmt.Errorf("image.ListByAuthor: %w", err)
	}

	return &ListResult{Images: images, Total: total}, nil
}
