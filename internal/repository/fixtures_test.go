package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"content-api/internal/domain"
	"content-api/internal/repository"
)

type repos struct {
	categories *repository.PostgresCategoryRepository
	authors    *repository.PostgresAuthorRepository
	articles   *repository.PostgresArticleRepository
}

func newRepos(tdb *TestDB) repos {
	return repos{
		categories: repository.NewPostgresCategoryRepository(tdb.Pool),
		authors:    repository.NewPostgresAuthorRepository(tdb.Pool),
		articles:   repository.NewPostgresArticleRepository(tdb.Pool),
	}
}

func createCategory(t *testing.T, r repos, slug string, order int) *domain.Category {
	t.Helper()
	c := &domain.Category{
		Slug:        slug,
		Name:        domain.Bilingual{Ar: "تصنيف " + slug, En: "Category " + slug},
		Description: domain.Bilingual{Ar: "وصف", En: "Description"},
		Order:       order,
		IsActive:    true,
	}
	c.Normalize(nil, time.Now().UTC())
	require.NoError(t, r.categories.Create(context.Background(), c))
	return c
}

func createAuthor(t *testing.T, r repos, name string) *domain.Author {
	t.Helper()
	a := &domain.Author{
		Name:        domain.Bilingual{Ar: "كاتب", En: name},
		Bio:         domain.Bilingual{Ar: "نبذة", En: "Bio of " + name},
		Credentials: domain.Bilingual{En: "Editor"},
		SocialLinks: domain.SocialLinks{Website: "https://example.com"},
		Email:       "Writer@Example.com",
		IsActive:    true,
	}
	a.Normalize(nil, time.Now().UTC())
	require.NoError(t, r.authors.Create(context.Background(), a))
	return a
}

type articleOpt func(a *domain.Article)

func published(at time.Time) articleOpt {
	return func(a *domain.Article) {
		a.Status = domain.StatusPublished
		a.PublishedAt = &at
	}
}

func editorsPick() articleOpt {
	return func(a *domain.Article) { a.IsEditorsPick = true }
}

func createArticle(t *testing.T, r repos, slug string, cat *domain.Category, author *domain.Author, opts ...articleOpt) *domain.Article {
	t.Helper()
	a := &domain.Article{
		Title:      domain.Bilingual{Ar: "عنوان " + slug, En: "Title " + slug},
		Slug:       slug,
		Excerpt:    domain.Bilingual{Ar: "مقتطف", En: "Excerpt"},
		Content:    domain.Bilingual{Ar: "<p>محتوى</p>", En: "<p>Body text</p>"},
		CategoryID: cat.ID,
		AuthorID:   author.ID,
		Tags:       []string{"Mindset", "growth"},
		Status:     domain.StatusDraft,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Normalize(nil, time.Now().UTC())
	require.NoError(t, r.articles.Create(context.Background(), a))
	return a
}
