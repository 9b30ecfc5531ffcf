package rest

import (
	"time"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
	"github.com/heartmarshall/imagecraft-backend/internal/service/transform"
)

type authorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type imageResponse struct {
	ID                 string                `json:"id"`
	Title              string                `json:"title"`
	TransformationType string                `json:"transformationType"`
	PublicID           string                `json:"publicId"`
	SecureURL          string                `json:"secureUrl"`
	Width              *int                  `json:"width,omitempty"`
	Height             *int                  `json:"height,omitempty"`
	Config             *domain.Configuration `json:"config,omitempty"`
	TransformationURL  *string               `json:"transformationUrl,omitempty"`
	AspectRatio        *string               `json:"aspectRatio,omitempty"`
	Color              *string               `json:"color,omitempty"`
	Prompt             *string               `json:"prompt,omitempty"`
	Author             *authorResponse       `json:"author,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

func toImageResponse(img *domain.Image) imageResponse {
	resp := imageResponse{
		ID:                 img.ID.String(),
		Title:              img.Title,
		TransformationType: img.TransformationType.String(),
		PublicID:           img.PublicID,
		SecureURL:          img.SecureURL,
		Width:              img.Width,
		Height:             img.Height,
		Config:             img.Config,
		TransformationURL:  img.TransformationURL,
		AspectRatio:        img.AspectRatio,
		Color:              img.Color,
		Prompt:             img.Prompt,
		CreatedAt:          img.CreatedAt,
		UpdatedAt:          img.UpdatedAt,
	}
	if a := img.Author; a != nil {
		resp.Author = &authorResponse{ID: a.ID.String(), FirstName: a.FirstName, LastName: a.LastName}
	}
	return resp
}

type formResponse struct {
	Title       string `json:"title"`
	AspectRatio string `json:"aspectRatio"`
	Color       string `json:"color"`
	Prompt      string `json:"prompt"`
	PublicID    string `json:"publicId"`
}

type sourceResponse struct {
	PublicID    string `json:"publicId"`
	SecureURL   string `json:"secureUrl"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type notificationResponse struct {
	Level   string    `json:"level"`
	Title   string    `json:"title"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

type sessionResponse struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	Mode           string                 `json:"mode"`
	ImageID        *string                `json:"imageId,omitempty"`
	State          string                 `json:"state"`
	Form           formResponse           `json:"form"`
	Image          sourceResponse         `json:"image"`
	Draft          *domain.Configuration  `json:"draft"`
	Config         *domain.Configuration  `json:"config"`
	IsTransforming bool                   `json:"isTransforming"`
	IsSubmitting   bool                   `json:"isSubmitting"`
	PendingEdits   bool                   `json:"pendingEdits"`
	CanApply       bool                   `json:"canApply"`
	CanSave        bool                   `json:"canSave"`
	CreditBalance  *int                   `json:"creditBalance,omitempty"`
	Notifications  []notificationResponse `json:"notifications"`
	LastActive     time.Time              `json:"lastActive"`
}

func toSessionResponse(s transform.Snapshot) sessionResponse {
	resp := sessionResponse{
		ID:             s.ID.String(),
		Type:           s.Kind.String(),
		Mode:           s.Mode.String(),
		State:          s.State.String(),
		Form:           formResponse(s.Form),
		Image:          sourceResponse(s.Source),
		Draft:          s.Draft,
		Config:         s.Committed,
		IsTransforming: s.Transforming,
		IsSubmitting:   s.Submitting,
		PendingEdits:   s.PendingEdits,
		CanApply:       s.CanApply,
		CanSave:        s.CanSave,
		CreditBalance:  s.Balance,
		Notifications:  make([]notificationResponse, 0, len(s.Notifications)),
		LastActive:     s.LastActive,
	}
	if s.ImageID != nil {
		id := s.ImageID.String()
		resp.ImageID = &id
	}
	for _, n := range s.Notifications {
		resp.Notifications = append(resp.Notifications, notificationResponse{
			Level:   string(n.Level),
			Title:   n.Title,
			Message: n.Message,
			At:      n.At,
		})
	}
	return resp
}

type userResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Photo         *string `json:"photo,omitempty"`
	Plan          int     `json:"plan"`
	CreditBalance int     `json:"creditBalance"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Photo:         u.Photo,
		Plan:          u.Plan,
		CreditBalance: u.CreditBalance,
	}
}

type transactionResponse struct {
	ID           string    `json:"id"`
	Delta        int       `json:"delta"`
	BalanceAfter int       `json:"balanceAfter"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toTransactionResponses(rows []domain.CreditTransaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, transactionResponse{
			ID:           t.ID.String(),
			Delta:        t.Delta,
			BalanceAfter: t.BalanceAfter,
			Reason:       t.Reason.String(),
			CreatedAt:    t.CreatedAt,
		})
	}
	return out
}
