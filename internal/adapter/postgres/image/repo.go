// Package image implements the Image repository using PostgreSQL.
// Writes use raw SQL; reads that join the author and the dynamic update are
// built with squirrel and scanned with scany.
package image

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/imagecraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/imagecraft-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var imageColumns = []string{
	"i.id", "i.title", "i.transformation_type", "i.public_id", "i.secure_url",
	"i.width", "i.height", "i.config", "i.transformation_url",
	"i.aspect_ratio", "i.color", "i.prompt", "i.author_id",
	"i.created_at", "i.updated_at",
}

const returningColumns = `RETURNING id, title, transformation_type, public_id, secure_url, width, height, config,
	transformation_url, aspect_ratio, color, prompt, author_id, created_at, updated_at`

// Repo provides image persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new image repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts img and returns the stored row (without the author projection).
func (r *Repo) Create(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cfg, err := marshalConfig(img.Config)
	if err != nil {
		return nil, err
	}

	var row imageRow
	err = pgxscan.Get(ctx, q, &row,
		`INSERT INTO images (id, title, transformation_type, public_id, secure_url, width, height, config,
		                     transformation_url, aspect_ratio, color, prompt, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 `+returningColumns,
		img.ID, img.Title, string(img.TransformationType), img.PublicID, img.SecureURL, img.Width, img.Height, cfg,
		img.TransformationURL, img.AspectRatio, img.Color, img.Prompt, img.AuthorID, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "image", img.ID)
	}

	return row.toDomain()
}

// Update replaces the full payload of img.ID. Author and creation time are never touched.
func (r *Repo) Update(ctx context.Context, img *domain.Image) (*domain.Image, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cfg, err := marshalConfig(img.Config)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Update("images").
		SetMap(map[string]any{
			"title":               img.Title,
			"transformation_type": string(img.TransformationType),
			"public_id":           img.PublicID,
			"secure_url":          img.SecureURL,
			"width":               img.Width,
			"height":              img.Height,
			"config":              cfg,
			"transformation_url":  img.TransformationURL,
			"aspect_ratio":        img.AspectRatio,
			"color":               img.Color,
			"prompt":              img.Prompt,
			"updated_at":          img.UpdatedAt,
		}).
		Where(sq.Eq{"id": img.ID}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update image query: %w", err)
	}

	var row imageRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "image", img.ID)
	}

	return row.toDomain()
}

// Delete removes the image only when it belongs to authorID.
// Reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, id, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM images WHERE id = $1 AND author_id = $2`, id, authorID)
	if err != nil {
		return false, postgres.MapError(err, "image", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an image joined with its author's public projection.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := selectWithAuthor().Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get image query: %w", err)
	}

	var row imageWithAuthorRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "image", id)
	}

	return row.toDomain()
}

// GetForUpdate loads an image and locks its row for the rest of the transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select(imageColumns...).
		From("images i").
		Where(sq.Eq{"i.id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock image query: %w", err)
	}

	var row imageRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "image", id)
	}

	return row.toDomain()
}

// ListByAuthor returns one page of the author's images, newest first, and
// the total number of images the author owns.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Image, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM images WHERE author_id = $1`, authorID).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "image", authorID)
	}

	query, args, err := selectWithAuthor().
		Where(sq.Eq{"i.author_id": authorID}).
		OrderBy("i.created_at DESC", "i.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list images query: %w", err)
	}

	var rows []imageWithAuthorRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "image", authorID)
	}

	out := make([]domain.Image, 0, len(rows))
	for i := range rows {
		img, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *img)
	}
	return out, total, nil
}

func selectWithAuthor() sq.SelectBuilder {
	return psql.Select(imageColumns...).
		Columns("u.first_name AS author_first_name", "u.last_name AS author_last_name").
		From("images i").
		Join("users u ON u.id = i.author_id")
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type imageRow struct {
	ID                 uuid.UUID `db:"id"`
	Title              string    `db:"title"`
	TransformationType string    `db:"transformation_type"`
	PublicID           string    `db:"public_id"`
	SecureURL          string    `db:"secure_url"`
	Width              *int      `db:"width"`
	Height             *int      `db:"height"`
	Config             []byte    `db:"config"`
	TransformationURL  *string   `db:"transformation_url"`
	AspectRatio        *string   `db:"aspect_ratio"`
	Color              *string   `db:"color"`
	Prompt             *string   `db:"prompt"`
	AuthorID           uuid.UUID `db:"author_id"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type imageWithAuthorRow struct {
	imageRow
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
}

func (r *imageRow) toDomain() (*domain.Image, error) {
	img := &domain.Image{
		ID:                 r.ID,
		Title:              r.Title,
		TransformationType: domain.TransformationKind(r.TransformationType),
		PublicID:           r.PublicID,
		SecureURL:          r.SecureURL,
		Width:              r.Width,
		Height:             r.Height,
		TransformationURL:  r.TransformationURL,
		AspectRatio:        r.AspectRatio,
		Color:              r.Color,
		Prompt:             r.Prompt,
		AuthorID:           r.AuthorID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if len(r.Config) > 0 {
		var cfg domain.Configuration
		if err := json.Unmarshal(r.Config, &cfg); err != nil {
			return nil, fmt.Errorf("image %s: decode config: %w", r.ID, err)
		}
		img.Config = &cfg
	}

	return img, nil
}

func (r *imageWithAuthorRow) toDomain() (*domain.Image, error) {
	img, err := r.imageRow.toDomain()
	if err != nil {
		return nil, err
	}
	img.Author = &domain.Author{ID: r.AuthorID, FirstName: r.AuthorFirstName, LastName: r.AuthorLastName}
	return img, nil
}

// marshalConfig encodes cfg for a jsonb column; nil stays SQL NULL.
func marshalConfig(cfg *domain.Configuration) (any, error) {
	if cfg == nil {
		return nil, nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode image config: %w", err)
	}
	return raw, nil
}
