package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user holding the given credit balance.
func SeedUser(t *testing.T, pool *pgxpool.Pool, credits int) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:            uuid.New(),
		ExternalID:    "ext-" + suffix,
		Email:         "user-" + suffix + "@example.com",
		Username:      "user-" + suffix,
		FirstName:     "Test",
		LastName:      "User " + suffix,
		Plan:          1,
		CreditBalance: credits,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, external_id, email, username, first_name, last_name, plan, credit_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.ExternalID, u.Email, u.Username, u.FirstName, u.LastName, u.Plan, u.CreditBalance, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedImage inserts a fill image owned by authorID.
func SeedImage(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Image {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	w, h := 1000, 1000
	ratio := "1:1"
	cfg := &domain.Configuration{Fill: &domain.FillConfig{AspectRatio: &ratio, Width: &w, Height: &h}}
	url := "https://res.example.com/image/upload/c_pad,ar_1:1,b_gen_fill,w_1000,h_1000/seed-" + uniqueSuffix()

	img := domain.Image{
		ID:                 uuid.New(),
		Title:              "Seed " + uniqueSuffix(),
		TransformationType: domain.KindFill,
		PublicID:           "seed/" + uniqueSuffix(),
		SecureURL:          "https://res.example.com/seed.png",
		Width:              &w,
		Height:             &h,
		Config:             cfg,
		TransformationURL:  &url,
		AspectRatio:        &ratio,
		AuthorID:           authorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("testhelper: SeedImage marshal config: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO images (id, title, transformation_type, public_id, secure_url, width, height, config,
		                     transformation_url, aspect_ratio, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		img.ID, img.Title, string(img.TransformationType), img.PublicID, img.SecureURL, w, h, raw,
		url, ratio, authorID, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImage: %v", err)
	}

	return img
}
