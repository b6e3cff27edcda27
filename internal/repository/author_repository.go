package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-api/internal/domain"
)

const authorResource = "Author"

var authorColumns = []string{
	"id", "name", "bio", "credentials", "image", "social_links", "email", "is_active", "created_at", "updated_at",
}

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// Create inserts a normalized author.
func (r *PostgresAuthorRepository) Create(ctx context.Context, a *domain.Author) error {
	query, args, err := psql.Insert("authors").
		Columns(authorColumns...).
		Values(a.ID, a.Name, a.Bio, a.Credentials, a.Image, a.SocialLinks, a.Email, a.IsActive, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert author: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return translateError(err, authorResource, "insert author")
	}
	return nil
}

// Update writes every mutable column of a normalized author.
func (r *PostgresAuthorRepository) Update(ctx context.Context, a *domain.Author) error {
	query, args, err := psql.Update("authors").
		Set("name", a.Name).
		Set("bio", a.Bio).
		Set("credentials", a.Credentials).
		Set("image", a.Image).
		Set("social_links", a.SocialLinks).
		Set("email", a.Email).
		Set("is_active", a.IsActive).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update author: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, authorResource, "update author")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(authorResource)
	}
	return nil
}

// SetActive toggles the soft-delete flag.
func (r *PostgresAuthorRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE authors SET is_active = $2, updated_at = NOW()
		WHERE id = $1
	`, id, active)
	if err != nil {
		return translateError(err, authorResource, "set author active")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(authorResource)
	}
	return nil
}

// FindByID returns an author of any activity state.
func (r *PostgresAuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	query, args, err := psql.Select(authorColumns...).From("authors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select author: %w", err)
	}

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, authorResource, "select author")
	}
	return a, nil
}

// FindByIDs returns the authors among ids that exist, in no particular order.
func (r *PostgresAuthorRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Author, error) {
	if len(ids) == 0 {
		return []domain.Author{}, nil
	}
	return r.findMany(ctx, psql.Select(authorColumns...).From("authors").Where(sq.Eq{"id": ids}))
}

// ListActive returns active authors, newest first.
func (r *PostgresAuthorRepository) ListActive(ctx context.Context) ([]domain.Author, error) {
	return r.findMany(ctx, psql.Select(authorColumns...).
		From("authors").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *PostgresAuthorRepository) findMany(ctx context.Context, b sq.SelectBuilder) ([]domain.Author, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select authors: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, authorResource, "select authors")
	}
	defer rows.Close()

	authors := make([]domain.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, authorResource, "iterate authors")
	}
	return authors, nil
}

func scanAuthor(row pgx.Row) (*domain.Author, error) {
	var a domain.Author
	err := row.Scan(&a.ID, &a.Name, &a.Bio, &a.Credentials, &a.Image, &a.SocialLinks, &a.Email,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
