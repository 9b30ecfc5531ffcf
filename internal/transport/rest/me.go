package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/credit"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

type creditService interface {
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
	History(ctx context.Context, in credit.HistoryInput) ([]domain.CreditTransaction, error)
}

// MeHandler serves the authenticated user's profile and credits.
type MeHandler struct {
	users   profileService
	credits creditService
	log     *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(users profileService, credits creditService, logger *slog.Logger) *MeHandler {
	return &MeHandler{users: users, credits: credits, log: logger.With("handler", "me")}
}

type creditsResponse struct {
	Balance      int                   `json:"balance"`
	Transactions []transactionResponse `json:"transactions"`
}

// Profile handles GET /api/me.
func (h *MeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Credits handles GET /api/me/credits.
func (h *MeHandler) Credits(w http.ResponseWriter, r *http.Request) {
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

	balance, err := h.credits.Balance(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	rows, err := h.credits.History(r.Context(), credit.HistoryInput{UserID: userID, Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, creditsResponse{
		Balance:      balance,
		Transactions: toTransactionResponses(rows),
	})
}
