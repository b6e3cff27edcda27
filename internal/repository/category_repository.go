package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-api/internal/domain"
)

const categoryResource = "Category"

var categoryColumns = []string{
	"id", "slug", "name", "description", "icon", "display_order", "is_active", "created_at", "updated_at",
}

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Create inserts a normalized category.
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query, args, err := psql.Insert("categories").
		Columns(categoryColumns...).
		Values(c.ID, c.Slug, c.Name, c.Description, c.Icon, c.Order, c.IsActive, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert category: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return translateError(err, categoryResource, "insert category")
	}
	return nil
}

// Update writes every mutable column of a normalized category.
func (r *PostgresCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query, args, err := psql.Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("icon", c.Icon).
		Set("display_order", c.Order).
		Set("is_active", c.IsActive).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update category: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, categoryResource, "update category")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(categoryResource)
	}
	return nil
}

// SetActive toggles the soft-delete flag.
func (r *PostgresCategoryRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories SET is_active = $2, updated_at = NOW()
		WHERE id = $1
	`, id, active)
	if err != nil {
		return translateError(err, categoryResource, "set category active")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(categoryResource)
	}
	return nil
}

// FindByID returns a category of any activity state.
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindBySlug returns a category of any activity state.
func (r *PostgresCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findOne(ctx, sq.Eq{"slug": slug})
}

// FindByIDs returns the categories among ids that exist, in no particular order.
func (r *PostgresCategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	return r.findMany(ctx, psql.Select(categoryColumns...).From("categories").Where(sq.Eq{"id": ids}))
}

// ListActive returns active categories by display order.
func (r *PostgresCategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	return r.findMany(ctx, psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "created_at ASC"))
}

func (r *PostgresCategoryRepository) findOne(ctx context.Context, where sq.Sqlizer) (*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns...).From("categories").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select category: %w", err)
	}

	c, err := scanCategory(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, categoryResource, "select category")
	}
	return c, nil
}

func (r *PostgresCategoryRepository) findMany(ctx context.Context, b sq.SelectBuilder) ([]domain.Category, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select categories: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, categoryResource, "select categories")
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, categoryResource, "iterate categories")
	}
	return categories, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Icon, &c.Order, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
