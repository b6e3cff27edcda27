package service

import (
	"context"

	"content-api/internal/domain"
)

// ListParams selects a page of published articles.
type ListParams struct {
	Page  int
	Limit int
	// CategorySlug optionally narrows the list. A slug that does not
	// resolve to a category is ignored.
	CategorySlug string
}

// ContentServiceInterface defines the read operations served over HTTP.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// ListPublished returns a page of published articles, newest first.
	ListPublished(ctx context.Context, params ListParams) (*domain.ArticlePage, error)
	// GetBySlug returns a published article and records a view.
	GetBySlug(ctx context.Context, slug string) (*domain.ArticleView, error)
	// EditorsPicks returns the newest published editor's picks.
	EditorsPicks(ctx context.Context, limit int) ([]domain.ArticleView, error)
	// Latest returns the newest published articles.
	Latest(ctx context.Context, limit int) ([]domain.ArticleView, error)
	// ListByCategory returns a page of published articles in the category.
	ListByCategory(ctx context.Context, categorySlug string, page, limit int) (*domain.ArticlePage, error)
	// Related returns other published articles from the article's category.
	Related(ctx context.Context, articleID string, limit int) ([]domain.ArticleView, error)
	// AllSlugs returns the slug of every published article.
	AllSlugs(ctx context.Context) ([]domain.ArticleSlug, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	GetAuthor(ctx context.Context, id string) (*domain.Author, error)
}
