package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/image"
	"github.com/heartmarshall/imagecraft-backend/pkg/ctxutil"
)

// imageService defines the minimal interface needed by ImageHandler.
type imageService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	ListByAuthor(ctx context.Context, in image.ListInput) (*image.ListResult, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (string, error)
}

// ImageHandler serves stored image records.
type ImageHandler struct {
	images imageService
	log    *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images imageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{images: images, log: logger.With("handler", "image")}
}

type imageListResponse struct {
	Images []imageResponse `json:"images"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type deleteResponse struct {
	Location  string `json:"location"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// List handles GET /api/images for the authenticated user.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.images.ListByAuthor(r.Context(), image.ListInput{AuthorID: userID, Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := imageListResponse{
		Images: make([]imageResponse, 0, len(res.Images)),
		Total:  res.Total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range res.Images {
		resp.Images = append(resp.Images, toImageResponse(&res.Images[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/images/{id}.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	img, err := h.images.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImageResponse(img))
}

// Delete handles DELETE /api/images/{id}. The caller is always sent home
// with 303, whether or not the deletion succeeded; a failure is reported in
// the body.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	location := domain.HomePath
	resp := deleteResponse{RequestID: ctxutil.RequestIDFromCtx(r.Context())}

	userID, err := currentUser(r)
	if err == nil {
		var id uuid.UUID
		if id, err = pathID(r); err == nil {
			location, err = h.images.Delete(r.Context(), userID, id)
		}
	}
	if err != nil {
		resp.Error = http.StatusText(statusFor(err))
		h.log.WarnContext(r.Context(), "delete image failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	resp.Location = location

	w.Header().Set("Location", location)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusSeeOther)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}
