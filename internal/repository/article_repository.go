package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-api/internal/domain"
)

const articleResource = "Article"

var articleColumns = []string{
	"id", "slug", "title", "excerpt", "content", "category_id", "author_id", "featured_image", "tags",
	"status", "is_editors_pick", "reading_time", "seo", "published_at", "views", "created_at", "updated_at",
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a normalized article. Slug collisions return domain.ErrDuplicate
// and dangling references a *domain.ReferenceError.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	query, args, err := psql.Insert("articles").
		Columns(articleColumns...).
		Values(a.ID, a.Slug, a.Title, a.Excerpt, a.Content, a.CategoryID, a.AuthorID, a.FeaturedImage,
			nonNil(a.Tags), string(a.Status), a.IsEditorsPick, a.ReadingTime, a.SEO, a.PublishedAt,
			a.Views, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert article: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return translateError(err, articleResource, "insert article")
	}
	return nil
}

// Update writes every mutable column of a normalized article. The view
// counter is left to IncrementViews so concurrent views are not lost.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	query, args, err := psql.Update("articles").
		SetMap(map[string]interface{}{
			"slug":            a.Slug,
			"title":           a.Title,
			"excerpt":         a.Excerpt,
			"content":         a.Content,
			"category_id":     a.CategoryID,
			"author_id":       a.AuthorID,
			"featured_image":  a.FeaturedImage,
			"tags":            nonNil(a.Tags),
			"status":          string(a.Status),
			"is_editors_pick": a.IsEditorsPick,
			"reading_time":    a.ReadingTime,
			"seo":             a.SEO,
			"published_at":    a.PublishedAt,
			"updated_at":      a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update article: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, articleResource, "update article")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(articleResource)
	}
	return nil
}

// Delete removes an article permanently.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return translateError(err, articleResource, "delete article")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(articleResource)
	}
	return nil
}

// FindByID returns an article of any status.
func (r *PostgresArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindBySlug returns an article of any status.
func (r *PostgresArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.findOne(ctx, sq.Eq{"slug": slug})
}

// Find returns a page of articles matching the filter, newest publication first.
func (r *PostgresArticleRepository) Find(ctx context.Context, q ArticleQuery) ([]domain.Article, error) {
	b := applyArticleFilter(psql.Select(articleColumns...).From("articles"), q.Filter).
		OrderBy("published_at DESC NULLS LAST", "id DESC")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select articles: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, articleResource, "select articles")
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, articleResource, "iterate articles")
	}
	return articles, nil
}

// Count returns the number of articles matching the filter.
func (r *PostgresArticleRepository) Count(ctx context.Context, f ArticleFilter) (int64, error) {
	query, args, err := applyArticleFilter(psql.Select("COUNT(*)").From("articles"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count articles: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, translateError(err, articleResource, "count articles")
	}
	return total, nil
}

// IncrementViews adds one view in a single statement and returns the new count.
func (r *PostgresArticleRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	var views int64
	err := r.pool.QueryRow(ctx, `
		UPDATE articles SET views = views + 1
		WHERE id = $1
		RETURNING views
	`, id).Scan(&views)
	if err != nil {
		return 0, translateError(err, articleResource, "increment views")
	}
	return views, nil
}

// ListPublishedSlugs returns slug, category slug and last update of every
// published article.
func (r *PostgresArticleRepository) ListPublishedSlugs(ctx context.Context) ([]domain.ArticleSlug, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.slug, COALESCE(c.slug, ''), a.updated_at
		FROM articles a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.status = 'published'
		ORDER BY a.published_at DESC NULLS LAST, a.id DESC
	`)
	if err != nil {
		return nil, translateError(err, articleResource, "select slugs")
	}
	defer rows.Close()

	slugs := make([]domain.ArticleSlug, 0)
	for rows.Next() {
		var s domain.ArticleSlug
		if err := rows.Scan(&s.Slug, &s.Category, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, articleResource, "iterate slugs")
	}
	return slugs, nil
}

// CountByCategories counts articles of any status per category id.
func (r *PostgresArticleRepository) CountByCategories(ctx context.Context, categoryIDs []string) (map[string]int64, error) {
	return r.countBy(ctx, "category_id", categoryIDs)
}

// CountByAuthors counts articles of any status per author id.
func (r *PostgresArticleRepository) CountByAuthors(ctx context.Context, authorIDs []string) (map[string]int64, error) {
	return r.countBy(ctx, "author_id", authorIDs)
}

func (r *PostgresArticleRepository) countBy(ctx context.Context, column string, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	query, args, err := psql.Select(column, "COUNT(*)").
		From("articles").
		Where(sq.Eq{column: ids}).
		GroupBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by %s: %w", column, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, articleResource, "count by "+column)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, articleResource, "iterate counts")
	}
	return counts, nil
}

func (r *PostgresArticleRepository) findOne(ctx context.Context, where sq.Sqlizer) (*domain.Article, error) {
	query, args, err := psql.Select(articleColumns...).From("articles").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select article: %w", err)
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, articleResource, "select article")
	}
	return a, nil
}

func applyArticleFilter(b sq.SelectBuilder, f ArticleFilter) sq.SelectBuilder {
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.CategoryID != "" {
		b = b.Where(sq.Eq{"category_id": f.CategoryID})
	}
	if f.EditorsPick {
		b = b.Where(sq.Eq{"is_editors_pick": true})
	}
	if f.ExcludeID != "" {
		b = b.Where(sq.NotEq{"id": f.ExcludeID})
	}
	return b
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	var status string
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Content, &a.CategoryID, &a.AuthorID,
		&a.FeaturedImage, &a.Tags, &status, &a.IsEditorsPick, &a.ReadingTime, &a.SEO, &a.PublishedAt,
		&a.Views, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = domain.ArticleStatus(status)
	return &a, nil
}
