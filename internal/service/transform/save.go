package transform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
)

// Save renders the committed configuration and stores the record: a new one
// in Add mode, the bound one in Update mode. It returns the stored record and
// its canonical location. On failure the session keeps its previous state.
func (s *Session) Save(ctx context.Context) (*domain.Image, string, error) {
	s.mu.Lock()
	if err := s.canSaveLocked(); err != nil {
		s.mu.Unlock()
		return nil, "", fmt.Errorf("transform.Save: %w", err)
	}

	prev := s.state
	s.state = StateSubmitting
	s.submitting = true
	s.touchLocked()

	job := saveJob{
		mode:      s.mode,
		imageID:   s.imageID,
		form:      s.form,
		source:    s.source,
		committed: s.committed.Clone(),
	}
	s.mu.Unlock()

	img, err := s.persist(ctx, job)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.touchLocked()

	if err != nil {
		s.state = prev
		s.notifyLocked(NotificationError, "Could not save the image", "Please try again")

		s.m.log.ErrorContext(ctx, "save transformation",
			slog.String("session_id", s.id.String()),
			slog.String("user_id", s.ownerID.String()),
			slog.String("mode", job.mode.String()),
			slog.String("error", err.Error()))

		return nil, "", fmt.Errorf("transform.Save: %w", err)
	}

	s.mode = domain.FormModeUpdate
	s.imageID = img.ID
	if s.draft.IsEmpty() {
		s.state = StateSaved
	} else {
		s.state = StateEditing
	}

	s.notifyLocked(NotificationSuccess, "Image saved", "")
	s.m.metrics.ImageSaved(job.mode)

	s.m.log.InfoContext(ctx, "transformation saved",
		slog.String("session_id", s.id.String()),
		slog.String("image_id", img.ID.String()),
		slog.String("mode", job.mode.String()))

	return img, img.Path(), nil
}

// saveJob is the session state captured when a save starts.
type saveJob struct {
	mode      domain.FormMode
	imageID   uuid.UUID
	form      Form
	source    Source
	committed *domain.Configuration
}

func (s *Session) persist(ctx context.Context, job saveJob) (*domain.Image, error) {
	url, err := s.m.renderer.Build(ctx, domain.RenderRequest{
		Src:    job.form.PublicID,
		Width:  job.source.Width,
		Height: job.source.Height,
		Config: job.committed,
	})
	if err != nil {
		return nil, err
	}

	width, height := job.source.Width, job.source.Height
	payload := image.Payload{
		Title:              job.form.Title,
		TransformationType: s.kind.Kind,
		PublicID:           job.form.PublicID,
		SecureURL:          job.source.SecureURL,
		Width:              &width,
		Height:             &height,
		Config:             job.committed,
		TransformationURL:  &url,
		AspectRatio:        optional(job.form.AspectRatio),
		Color:              optional(job.form.Color),
		Prompt:             optional(job.form.Prompt),
	}

	if job.mode == domain.FormModeUpdate {
		return s.m.images.Update(ctx, s.ownerID, image.UpdateInput{ID: job.imageID, Payload: payload})
	}
	return s.m.images.Create(ctx, s.ownerID, image.CreateInput{Payload: payload})
}
