package repository

import (
	"context"

	"content-api/internal/domain"
)

// ArticleFilter narrows article queries. Zero values mean "no constraint".
type ArticleFilter struct {
	Status      domain.ArticleStatus
	CategoryID  string
	EditorsPick bool
	ExcludeID   string
}

// ArticleQuery is a filtered page of articles sorted by publication time,
// newest first, with id as tie-breaker.
type ArticleQuery struct {
	Filter ArticleFilter
	Limit  int
	Offset int
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	SetActive(ctx context.Context, id string, active bool) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
}

// AuthorRepository defines methods for author data access.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	Update(ctx context.Context, author *domain.Author) error
	SetActive(ctx context.Context, id string, active bool) error
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Author, error)
	ListActive(ctx context.Context) ([]domain.Author, error)
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// FindBySlug returns the article with slug regardless of status.
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Find(ctx context.Context, q ArticleQuery) ([]domain.Article, error)
	Count(ctx context.Context, f ArticleFilter) (int64, error)
	// IncrementViews atomically adds one view and returns the new count.
	IncrementViews(ctx context.Context, id string) (int64, error)
	ListPublishedSlugs(ctx context.Context) ([]domain.ArticleSlug, error)
	CountByCategories(ctx context.Context, categoryIDs []string) (map[string]int64, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (map[string]int64, error)
}
