// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

const userColumns = `id, external_id, email, username, first_name, last_name, photo, plan, credit_balance, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByExternalID returns a user by auth-provider subject.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetAuthor returns the public author projection of a user.
func (r *Repo) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var a domain.Author
	err := q.QueryRow(ctx, `SELECT id, first_name, last_name FROM users WHERE id = $1`, id).
		Scan(&a.ID, &a.FirstName, &a.LastName)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &a, nil
}

// Exists reports whether a user row with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO users (id, external_id, email, username, first_name, last_name, photo, plan, credit_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+userColumns,
		u.ID, u.ExternalID, u.Email, u.Username, u.FirstName, u.LastName, u.Photo, u.Plan, u.CreditBalance, u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.ExternalID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&u.Photo, &u.Plan, &u.CreditBalance, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
