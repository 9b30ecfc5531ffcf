package image

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Update replaces the payload of an existing record. Only the author may
// update it; authorship and creation time never change.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, in UpdateInput) (*domain.Image, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Image
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.images.GetForUpdate(ctx, in.ID)
		if err != nil {
			return err
		}
		if current.AuthorID != ownerID {
			return domain.ErrUnauthorized
		}

		next := in.Payload.toImage()
		next.ID = current.ID
		next.AuthorID = current.AuthorID
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = s.clock.Now().UTC()

		updated, err = s.images.Update(ctx, next)
		if err != nil {
			return err
		}

		updated.Author, err = s.users.GetAuthor(ctx, updated.AuthorID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("image.Update: %w", err)
	}

	s.revalidate(ctx, updated.Path(), domain.HomePath)

	s.log.InfoContext(ctx, "image updated",
		slog.String("image_id", updated.ID.String()),
		slog.String("author_id", ownerID.String()))

	return updated, nil
}
