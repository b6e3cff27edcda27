package service

import (
	"context"
	"fmt"

	"content-api/internal/domain"
	"content-api/internal/repository"
)

// resolver replaces article reference ids with projected categories and
// authors using one batch lookup per referenced collection.
type resolver struct {
	categories repository.CategoryRepository
	authors    repository.AuthorRepository
}

func (r *resolver) resolve(ctx context.Context, articles []domain.Article, p domain.Projection) ([]domain.ArticleView, error) {
	views := make([]domain.ArticleView, len(articles))
	if len(articles) == 0 {
		return views, nil
	}

	categoryIDs := uniqueIDs(articles, func(a *domain.Article) string { return a.CategoryID })
	authorIDs := uniqueIDs(articles, func(a *domain.Article) string { return a.AuthorID })

	categories, err := r.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	authors, err := r.authors.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve authors: %w", err)
	}

	categoryRefs := make(map[string]*domain.CategoryRef, len(categories))
	for i := range categories {
		categoryRefs[categories[i].ID] = categories[i].Ref(p)
	}
	authorRefs := make(map[string]*domain.AuthorRef, len(authors))
	for i := range authors {
		authorRefs[authors[i].ID] = authors[i].Ref(p)
	}

	// Missing targets stay nil and serialize as null.
	for i := range articles {
		views[i] = domain.ArticleView{
			Article:  articles[i],
			Category: categoryRefs[articles[i].CategoryID],
			Author:   authorRefs[articles[i].AuthorID],
		}
	}
	return views, nil
}

func uniqueIDs(articles []domain.Article, key func(a *domain.Article) string) []string {
	seen := make(map[string]struct{}, len(articles))
	ids := make([]string, 0, len(articles))
	for i := range articles {
		id := key(&articles[i])
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
