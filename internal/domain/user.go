package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user and their credit balance.
type User struct {
	ID            uuid.UUID
	ExternalID    string
	Email         string
	Username      string
	FirstName     string
	LastName      string
	Photo         *string
	Plan          int
	CreditBalance int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Author is the public projection of a user attached to an image.
// It never carries credentials or the credit balance.
type Author struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// AsAuthor projects u onto its public author fields.
func (u *User) AsAuthor() Author {
	return Author{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
