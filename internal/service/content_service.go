package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"content-api/internal/domain"
	"content-api/internal/logger"
	"content-api/internal/metrics"
	"content-api/internal/repository"
	"content-api/internal/validator"
)

// Per-operation limits. Requests above a cap are served at the cap.
const (
	DefaultPage = 1

	DefaultListLimit = 10
	MaxListLimit     = 50

	DefaultEditorsPicksLimit = 3
	MaxEditorsPicksLimit     = 10

	DefaultLatestLimit = 6
	MaxLatestLimit     = 20

	DefaultRelatedLimit = 3
	MaxRelatedLimit     = 10
)

// ContentService implements the content query layer and the entity writes
// that feed it.
type ContentService struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	authors    repository.AuthorRepository
	validator  *validator.Validator
	resolver   *resolver
	now        func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(
	articles repository.ArticleRepository,
	categories repository.CategoryRepository,
	authors repository.AuthorRepository,
	v *validator.Validator,
) *ContentService {
	return &ContentService{
		articles:   articles,
		categories: categories,
		authors:    authors,
		validator:  v,
		resolver:   &resolver{categories: categories, authors: authors},
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ListPublished returns a page of published articles, newest first.
func (s *ContentService) ListPublished(ctx context.Context, params ListParams) (page *domain.ArticlePage, err error) {
	defer observe("list_published", metrics.NewTimer(), &err)

	filter := repository.ArticleFilter{Status: domain.StatusPublished}
	if params.CategorySlug != "" {
		category, err := s.categories.FindBySlug(ctx, params.CategorySlug)
		switch {
		case err == nil:
			filter.CategoryID = category.ID
		case errors.Is(err, domain.ErrNotFound):
			logger.DebugContext(ctx, "Unknown category filter ignored",
				slog.String("category", params.CategorySlug))
		default:
			return nil, fmt.Errorf("resolve category filter: %w", err)
		}
	}

	return s.page(ctx, filter, params.Page, params.Limit)
}

// ListByCategory returns a page of published articles in the category. An
// unknown category is an error here, unlike the filter of ListPublished.
func (s *ContentService) ListByCategory(ctx context.Context, categorySlug string, page, limit int) (result *domain.ArticlePage, err error) {
	defer observe("list_by_category", metrics.NewTimer(), &err)

	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	result, err = s.page(ctx, repository.ArticleFilter{
		Status:     domain.StatusPublished,
		CategoryID: category.ID,
	}, page, limit)
	if err != nil {
		return nil, err
	}
	result.Category = category
	return result, nil
}

func (s *ContentService) page(ctx context.Context, filter repository.ArticleFilter, page, limit int) (*domain.ArticlePage, error) {
	if page < 1 {
		page = DefaultPage
	}
	limit = clamp(limit, DefaultListLimit, MaxListLimit)

	total, err := s.articles.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	pagination := domain.NewPagination(page, limit, total)
	articles, err := s.articles.Find(ctx, repository.ArticleQuery{
		Filter: filter,
		Limit:  limit,
		Offset: pagination.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}

	views, err := s.resolver.resolve(ctx, articles, domain.ProjectionSummary)
	if err != nil {
		return nil, err
	}

	return &domain.ArticlePage{Articles: views, Pagination: pagination}, nil
}

// GetBySlug returns a published article with full references and records
// one view. The returned view count includes this read.
func (s *ContentService) GetBySlug(ctx context.Context, slug string) (view *domain.ArticleView, err error) {
	defer observe("get_by_slug", metrics.NewTimer(), &err)

	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished() {
		return nil, domain.NotFound("Article")
	}

	views, err := s.articles.IncrementViews(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}
	article.Views = views
	metrics.RecordArticleView()

	resolved, err := s.resolver.resolve(ctx, []domain.Article{*article}, domain.ProjectionDetail)
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// EditorsPicks returns the newest published editor's picks.
func (s *ContentService) EditorsPicks(ctx context.Context, limit int) (views []domain.ArticleView, err error) {
	defer observe("editors_picks", metrics.NewTimer(), &err)

	return s.top(ctx, repository.ArticleFilter{
		Status:      domain.StatusPublished,
		EditorsPick: true,
	}, clamp(limit, DefaultEditorsPicksLimit, MaxEditorsPicksLimit))
}

// Latest returns the newest published articles.
func (s *ContentService) Latest(ctx context.Context, limit int) (views []domain.ArticleView, err error) {
	defer observe("latest", metrics.NewTimer(), &err)

	return s.top(ctx, repository.ArticleFilter{
		Status: domain.StatusPublished,
	}, clamp(limit, DefaultLatestLimit, MaxLatestLimit))
}

// Related returns other published articles sharing the article's category.
func (s *ContentService) Related(ctx context.Context, articleID string, limit int) (views []domain.ArticleView, err error) {
	defer observe("related", metrics.NewTimer(), &err)

	seed, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	return s.top(ctx, repository.ArticleFilter{
		Status:     domain.StatusPublished,
		CategoryID: seed.CategoryID,
		ExcludeID:  seed.ID,
	}, clamp(limit, DefaultRelatedLimit, MaxRelatedLimit))
}

func (s *ContentService) top(ctx context.Context, filter repository.ArticleFilter, limit int) ([]domain.ArticleView, error) {
	articles, err := s.articles.Find(ctx, repository.ArticleQuery{Filter: filter, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	return s.resolver.resolve(ctx, articles, domain.ProjectionSummary)
}

// AllSlugs returns slug, category slug and last update of every published article.
func (s *ContentService) AllSlugs(ctx context.Context) (slugs []domain.ArticleSlug, err error) {
	defer observe("all_slugs", metrics.NewTimer(), &err)

	slugs, err = s.articles.ListPublishedSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slugs: %w", err)
	}
	return slugs, nil
}

// ListCategories returns active categories in display order with article counts.
func (s *ContentService) ListCategories(ctx context.Context) (categories []domain.Category, err error) {
	defer observe("list_categories", metrics.NewTimer(), &err)

	categories, err = s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	ids := make([]string, len(categories))
	for i := range categories {
		ids[i] = categories[i].ID
	}
	counts, err := s.articles.CountByCategories(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count category articles: %w", err)
	}
	for i := range categories {
		n := counts[categories[i].ID]
		categories[i].ArticleCount = &n
	}
	return categories, nil
}

// GetCategory returns an active category with its article count.
func (s *ContentService) GetCategory(ctx context.Context, slug string) (category *domain.Category, err error) {
	defer observe("get_category", metrics.NewTimer(), &err)

	category, err = s.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, domain.NotFound("Category")
	}

	counts, err := s.articles.CountByCategories(ctx, []string{category.ID})
	if err != nil {
		return nil, fmt.Errorf("count category articles: %w", err)
	}
	n := counts[category.ID]
	category.ArticleCount = &n
	return category, nil
}

// ListAuthors returns active authors, newest first, with article counts.
func (s *ContentService) ListAuthors(ctx context.Context) (authors []domain.Author, err error) {
	defer observe("list_authors", metrics.NewTimer(), &err)

	authors, err = s.authors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	ids := make([]string, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}
	counts, err := s.articles.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count author articles: %w", err)
	}
	for i := range authors {
		n := counts[authors[i].ID]
		authors[i].ArticleCount = &n
	}
	return authors, nil
}

// GetAuthor returns an active author with its article count.
func (s *ContentService) GetAuthor(ctx context.Context, id string) (author *domain.Author, err error) {
	defer observe("get_author", metrics.NewTimer(), &err)

	author, err = s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !author.IsActive {
		return nil, domain.NotFound("Author")
	}

	counts, err := s.articles.CountByAuthors(ctx, []string{author.ID})
	if err != nil {
		return nil, fmt.Errorf("count author articles: %w", err)
	}
	n := counts[author.ID]
	author.ArticleCount = &n
	return author, nil
}

// clamp applies an operation's default and hard cap to a requested limit.
func clamp(limit, def, max int) int {
	switch {
	case limit < 1:
		return def
	case limit > max:
		return max
	default:
		return limit
	}
}

func observe(operation string, timer *metrics.Timer, err *error) {
	result := metrics.ResultSuccess
	switch {
	case *err == nil:
	case errors.Is(*err, domain.ErrNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.ObserveQuery(operation, result, timer.Seconds())
}
