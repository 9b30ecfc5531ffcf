package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/transform"
)

// sessionManager defines the minimal interface needed by SessionHandler.
type sessionManager interface {
	Start(ctx context.Context, in transform.StartInput) (*transform.Session, error)
	Get(userID, id uuid.UUID) (*transform.Session, error)
	Close(ctx context.Context, userID, id uuid.UUID) error
}

// SessionHandler serves the transformation form endpoints.
type SessionHandler struct {
	sessions sessionManager
	log      *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions sessionManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: logger.With("handler", "session")}
}

type startRequest struct {
	Type    string  `json:"type"`
	ImageID *string `json:"imageId,omitempty"`
}

type editRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type aspectRatioRequest struct {
	AspectRatio string `json:"aspectRatio"`
}

type uploadRequest struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureURL"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Error     string `json:"error,omitempty"`
}

type saveResponse struct {
	Image    imageResponse   `json:"image"`
	Location string          `json:"location"`
	Session  sessionResponse `json:"session"`
}

// Start handles POST /api/sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req startRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	in := transform.StartInput{UserID: userID, Kind: domain.TransformationKind(req.Type)}
	if req.ImageID != nil {
		id, err := uuid.Parse(*req.ImageID)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("imageId", "must be a UUID"))
			return
		}
		in.ImageID = &id
	}

	s, err := h.sessions.Start(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/sessions/"+s.ID().String())
	writeJSON(w, http.StatusCreated, toSessionResponse(s.Snapshot(true)))
}

// Get handles GET /api/sessions/{id}. Pending notifications are drained.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		return http.StatusOK, nil
	})
}

// Close handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.sessions.Close(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Edit handles POST /api/sessions/{id}/edits. The edit lands after the
// debounce delay, so the response is 202.
func (h *SessionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		return http.StatusAccepted, s.Edit(domain.FormField(req.Field), req.Value)
	})
}

// SetTitle handles POST /api/sessions/{id}/title.
func (h *SessionHandler) SetTitle(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		return http.StatusOK, s.SetTitle(req.Title)
	})
}

// SelectAspectRatio handles POST /api/sessions/{id}/aspect-ratio.
func (h *SessionHandler) SelectAspectRatio(w http.ResponseWriter, r *http.Request) {
	var req aspectRatioRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		return http.StatusOK, s.SelectAspectRatio(req.AspectRatio)
	})
}

// Upload handles POST /api/sessions/{id}/upload with either a finished
// upload or the widget's error.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		if req.Error != "" {
			return 0, s.ReportUploadError(req.Error)
		}
		return http.StatusOK, s.AttachUpload(transform.UploadResult{
			PublicID:  req.PublicID,
			SecureURL: req.SecureURL,
			Width:     req.Width,
			Height:    req.Height,
		})
	})
}

// Apply handles POST /api/sessions/{id}/apply.
func (h *SessionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *transform.Session) (int, error) {
		return http.StatusOK, s.Apply(r.Context())
	})
}

// Save handles POST /api/sessions/{id}/save.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	created := s.Snapshot(false).Mode == domain.FormModeAdd
	img, location, err := s.Save(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	w.Header().Set("Location", location)
	writeJSON(w, status, saveResponse{
		Image:    toImageResponse(img),
		Location: location,
		Session:  toSessionResponse(s.Snapshot(true)),
	})
}

// withSession resolves the caller's session, runs op and responds with the
// resulting snapshot.
func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, op func(s *transform.Session) (int, error)) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	status, err := op(s)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, status, toSessionResponse(s.Snapshot(true)))
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*transform.Session, bool) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}

	s, err := h.sessions.Get(userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}
	return s, true
}
