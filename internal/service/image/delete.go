package image

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// Delete removes a record owned by ownerID and returns where the caller
// navigates next. The location is the home path whether or not removal
// succeeded; the error, if any, is returned alongside it.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) (string, error) {
	if err := s.delete(ctx, ownerID, id); err != nil {
		s.log.ErrorContext(ctx, "delete image failed",
			slog.String("image_id", id.String()),
			slog.String("user_id", ownerID.String()),
			slog.String("error", err.Error()))
		return domain.HomePath, fmt.Errorf("image.Delete: %w", err)
	}

	s.revalidate(ctx, domain.ImagePath(id), domain.HomePath)

	s.log.InfoContext(ctx, "image deleted",
		slog.String("image_id", id.String()),
		slog.String("user_id", ownerID.String()))

	return domain.HomePath, nil
}

func (s *Service) delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.images.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.AuthorID != ownerID {
			return domain.ErrUnauthorized
		}

		removed, err := s.images.Delete(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}
