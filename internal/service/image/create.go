package image

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Create stores a new record authored by ownerID.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*domain.Image, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	author, err := s.users.GetAuthor(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("image.Create: owner not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("image.Create: %w", err)
	}

	now := s.clock.Now().UTC()
	img := in.Payload.toImage()
	img.ID = uuid.New()
	img.AuthorID = ownerID
	img.CreatedAt = now
	img.UpdatedAt = now

	created, err := s.images.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("image.Create: %w", err)
	}
	created.Author = author

	s.revalidate(ctx, domain.HomePath)

	s.log.InfoContext(ctx, "image created",
		slog.String("image_id", created.ID.String()),
		slog.String("author_id", ownerID.String()),
		slog.String("type", created.TransformationType.String()))

	return created, nil
}

func (p Payload) toImage() *domain.Image {
	return &domain.Image{
		Title:              p.Title,
		TransformationType: p.TransformationType,
		PublicID:           p.PublicID,
		SecureURL:          p.SecureURL,
		Width:              p.Width,
		Height:             p.Height,
		Config:             p.Config.Clone(),
		TransformationURL:  p.TransformationURL,
		AspectRatio:        p.AspectRatio,
		Color:              p.Color,
		Prompt:             p.Prompt,
	}
}
