package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-api/internal/domain"
)

func newArticleInput() *domain.Article {
	return &domain.Article{
		Title:      domain.Bilingual{Ar: "ابدأ يومك", En: "  Start Your Day  "},
		Excerpt:    domain.Bilingual{Ar: "مقتطف", En: "Excerpt"},
		Content:    domain.Bilingual{Ar: "<p>نص قصير</p>", En: "<p>Short body</p>"},
		CategoryID: categoryID,
		AuthorID:   authorID,
		Tags:       []string{"Habits", "habits "},
		Status:     domain.StatusPublished,
	}
}

func TestContentService_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores", func(t *testing.T) {
		f := newFixture(t)
		cat := testCategory()
		author := testAuthor()
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)
		f.articles.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

		created, err := f.svc.CreateArticle(ctx, newArticleInput())

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "start-your-day", created.Slug)
		assert.Equal(t, "Start Your Day", created.Title.En)
		assert.Equal(t, []string{"habits"}, created.Tags)
		assert.Equal(t, domain.ReadingTime{Ar: 1, En: 1}, created.ReadingTime)
		require.NotNil(t, created.PublishedAt)
	})

	t.Run("validation failure lists every field and skips the store", func(t *testing.T) {
		f := newFixture(t)
		in := newArticleInput()
		in.Title.Ar = ""
		in.Excerpt = domain.Bilingual{}

		_, err := f.svc.CreateArticle(ctx, in)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "title.ar")
		assert.Contains(t, ve.Fields, "excerpt.ar")
		assert.Contains(t, ve.Fields, "excerpt.en")
	})

	t.Run("malformed category id", func(t *testing.T) {
		f := newFixture(t)
		in := newArticleInput()
		in.CategoryID = "abc"

		_, err := f.svc.CreateArticle(ctx, in)

		var re *domain.ReferenceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "category", re.Field)
		assert.Equal(t, "Invalid category: abc", re.Error())
	})

	t.Run("inactive author", func(t *testing.T) {
		f := newFixture(t)
		cat := testCategory()
		author := testAuthor()
		author.IsActive = false
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)

		_, err := f.svc.CreateArticle(ctx, newArticleInput())

		var re *domain.ReferenceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "author", re.Field)
	})

	t.Run("missing category", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, domain.NotFound("Category"))

		_, err := f.svc.CreateArticle(ctx, newArticleInput())

		var re *domain.ReferenceError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "category", re.Field)
	})

	t.Run("duplicate slug from store", func(t *testing.T) {
		f := newFixture(t)
		cat := testCategory()
		author := testAuthor()
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)
		f.articles.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := f.svc.CreateArticle(ctx, newArticleInput())

		assert.True(t, errors.Is(err, domain.ErrDuplicate))
	})
}

func TestContentService_UpdateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps first publication time and views", func(t *testing.T) {
		f := newFixture(t)
		firstPublished := time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC)
		prev := publishedArticle("a1", "start-your-day", firstPublished)
		prev.Views = 42
		prev.Content = domain.Bilingual{Ar: "<p>نص قصير</p>", En: "<p>Short body</p>"}
		prev.ReadingTime = domain.ReadingTime{Ar: 1, En: 1}

		cat := testCategory()
		author := testAuthor()
		f.articles.EXPECT().FindByID(mock.Anything, "a1").Return(&prev, nil)
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)
		f.articles.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

		in := newArticleInput()
		in.Status = domain.StatusArchived

		updated, err := f.svc.UpdateArticle(ctx, "a1", in)

		require.NoError(t, err)
		assert.Equal(t, "a1", updated.ID)
		assert.Equal(t, int64(42), updated.Views)
		require.NotNil(t, updated.PublishedAt)
		assert.True(t, firstPublished.Equal(*updated.PublishedAt))
	})

	t.Run("retitling keeps the stored slug", func(t *testing.T) {
		f := newFixture(t)
		prev := publishedArticle("a1", "start-your-day", time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC))

		cat := testCategory()
		author := testAuthor()
		f.articles.EXPECT().FindByID(mock.Anything, "a1").Return(&prev, nil)
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)
		f.articles.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

		in := newArticleInput()
		in.Title.En = "A Completely Different Title"

		updated, err := f.svc.UpdateArticle(ctx, "a1", in)

		require.NoError(t, err)
		assert.Equal(t, "start-your-day", updated.Slug)
	})

	t.Run("explicit slug replaces the stored one", func(t *testing.T) {
		f := newFixture(t)
		prev := publishedArticle("a1", "start-your-day", time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC))

		cat := testCategory()
		author := testAuthor()
		f.articles.EXPECT().FindByID(mock.Anything, "a1").Return(&prev, nil)
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&cat, nil)
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&author, nil)
		f.articles.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

		in := newArticleInput()
		in.Slug = " Morning-Routine "

		updated, err := f.svc.UpdateArticle(ctx, "a1", in)

		require.NoError(t, err)
		assert.Equal(t, "morning-routine", updated.Slug)
	})

	t.Run("missing article", func(t *testing.T) {
		f := newFixture(t)
		f.articles.EXPECT().FindByID(mock.Anything, "nope").Return(nil, domain.NotFound("Article"))

		_, err := f.svc.UpdateArticle(ctx, "nope", newArticleInput())

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestContentService_CategoryAndAuthorWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("create category starts active with default icon", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)

		created, err := f.svc.CreateCategory(ctx, &domain.Category{
			Slug:        "Awareness",
			Name:        domain.Bilingual{Ar: "الوعي", En: "Awareness"},
			Description: domain.Bilingual{Ar: "وصف", En: "Description"},
		})

		require.NoError(t, err)
		assert.True(t, created.IsActive)
		assert.Equal(t, "awareness", created.Slug)
		assert.Equal(t, domain.DefaultCategoryIcon, created.Icon)
	})

	t.Run("category outside the allowed set", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateCategory(ctx, &domain.Category{
			Slug:        "news",
			Name:        domain.Bilingual{Ar: "أخبار", En: "News"},
			Description: domain.Bilingual{Ar: "وصف", En: "Description"},
		})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "slug")
	})

	t.Run("update category keeps slug and activity", func(t *testing.T) {
		f := newFixture(t)
		prev := testCategory()
		f.categories.EXPECT().FindByID(mock.Anything, categoryID).Return(&prev, nil)
		f.categories.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)

		updated, err := f.svc.UpdateCategory(ctx, categoryID, &domain.Category{
			Slug:        "self-development",
			Name:        domain.Bilingual{Ar: "الوعي", En: "Awareness, renamed"},
			Description: domain.Bilingual{Ar: "وصف", En: "Description"},
		})

		require.NoError(t, err)
		assert.Equal(t, "awareness", updated.Slug)
		assert.True(t, updated.IsActive)
	})

	t.Run("deactivate category", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().SetActive(mock.Anything, categoryID, false).Return(nil)

		require.NoError(t, f.svc.DeactivateCategory(ctx, categoryID))
	})

	t.Run("create author lowercases email", func(t *testing.T) {
		f := newFixture(t)
		f.authors.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Author")).Return(nil)

		created, err := f.svc.CreateAuthor(ctx, &domain.Author{
			Name:  domain.Bilingual{Ar: "فريق", En: "Team"},
			Email: "Team@Example.COM",
		})

		require.NoError(t, err)
		assert.Equal(t, "team@example.com", created.Email)
		assert.True(t, created.IsActive)
	})

	t.Run("update and deactivate author", func(t *testing.T) {
		f := newFixture(t)
		prev := testAuthor()
		f.authors.EXPECT().FindByID(mock.Anything, authorID).Return(&prev, nil)
		f.authors.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Author")).Return(nil)
		f.authors.EXPECT().SetActive(mock.Anything, authorID, false).Return(nil)

		updated, err := f.svc.UpdateAuthor(ctx, authorID, &domain.Author{
			Name: domain.Bilingual{Ar: "فريق", En: "Team, renamed"},
		})
		require.NoError(t, err)
		assert.Equal(t, authorID, updated.ID)

		require.NoError(t, f.svc.DeactivateAuthor(ctx, authorID))
	})

	t.Run("delete article", func(t *testing.T) {
		f := newFixture(t)
		f.articles.EXPECT().Delete(mock.Anything, "a1").Return(nil)

		require.NoError(t, f.svc.DeleteArticle(ctx, "a1"))
	})
}
