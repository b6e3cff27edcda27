package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestBilingual(t *testing.T) {
	if !(Bilingual{}).IsZero() {
		t.Error("empty Bilingual should be zero")
	}
	if (Bilingual{Ar: "مرحبا"}).IsZero() {
		t.Error("Bilingual with one language should not be zero")
	}

	got := Bilingual{Ar: "  مرحبا ", En: "\tHello\n"}.Trimmed()
	if got.Ar != "مرحبا" || got.En != "Hello" {
		t.Errorf("Trimmed() = %+v", got)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit int
		total       int64
		wantPages   int
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{3, 1, 2, 2},
		{1, 50, 120, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.limit), func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", p.Pages, tt.wantPages)
			}
			if p.Offset() != (tt.page-1)*tt.limit {
				t.Errorf("Offset = %d, want %d", p.Offset(), (tt.page-1)*tt.limit)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("Article"))

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("wrapped NotFoundError should match ErrNotFound")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Article not found" {
		t.Errorf("unexpected not found error: %v", err)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := NewValidationError(map[string]string{
		"title.en": "English title is required",
		"author":   "Author is required",
	})

	msgs := err.Messages()
	if len(msgs) != 2 || msgs[0] != "Author is required" {
		t.Errorf("Messages() = %v, want ordered by field", msgs)
	}
	if !strings.Contains(err.Error(), "English title is required") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func newTestArticle() *Article {
	return &Article{
		Title:      Bilingual{Ar: "عنوان", En: "  Café Culture: A Guide!  "},
		Excerpt:    Bilingual{Ar: "مقتطف", En: "Excerpt"},
		Content:    Bilingual{Ar: "<p>نص</p>", En: "<p>" + strings.Repeat("word ", 620) + "</p>"},
		CategoryID: "8f8c3b4e-6a53-4a57-9f37-7d3c9c0f2a11",
		AuthorID:   "0d4e2a6f-1b9c-4f8e-a3d2-5c6b7e8f9a01",
		Tags:       []string{" Mindset ", "mindset", "", "Growth"},
	}
}

func TestArticleNormalize_Create(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)
	a := newTestArticle()

	a.Normalize(nil, now)

	if a.Slug != "cafe-culture-a-guide" {
		t.Errorf("Slug = %q, want cafe-culture-a-guide", a.Slug)
	}
	if a.Status != StatusDraft {
		t.Errorf("Status = %q, want draft", a.Status)
	}
	if a.PublishedAt != nil {
		t.Error("draft article must not have publishedAt")
	}
	if a.ReadingTime.En != 4 {
		t.Errorf("ReadingTime.En = %d, want 4", a.ReadingTime.En)
	}
	if a.ReadingTime.Ar != 1 {
		t.Errorf("ReadingTime.Ar = %d, want 1", a.ReadingTime.Ar)
	}
	if strings.Join(a.Tags, ",") != "mindset,growth" {
		t.Errorf("Tags = %v, want [mindset growth]", a.Tags)
	}
	if a.ID == "" || !a.CreatedAt.Equal(now) {
		t.Error("ID and CreatedAt should be assigned on create")
	}
}

func TestArticleNormalize_KeepsExplicitSlug(t *testing.T) {
	a := newTestArticle()
	a.Slug = " Custom-Slug "

	a.Normalize(nil, time.Now())

	if a.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want custom-slug", a.Slug)
	}
}

func TestArticleNormalize_PublishedAtSetOnce(t *testing.T) {
	created := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	published := created.Add(24 * time.Hour)
	later := published.Add(24 * time.Hour)

	stored := newTestArticle()
	stored.Normalize(nil, created)

	update := *stored
	update.Status = StatusPublished
	update.Normalize(stored, published)

	if update.PublishedAt == nil || !update.PublishedAt.Equal(published) {
		t.Fatalf("PublishedAt = %v, want %v", update.PublishedAt, published)
	}

	again := update
	again.Title.En = "Edited title"
	again.Normalize(&update, later)

	if !again.PublishedAt.Equal(published) {
		t.Errorf("PublishedAt changed on second save: %v", again.PublishedAt)
	}

	archived := again
	archived.Status = StatusArchived
	archived.Normalize(&again, later)
	if archived.PublishedAt == nil || !archived.PublishedAt.Equal(published) {
		t.Errorf("PublishedAt must survive status changes, got %v", archived.PublishedAt)
	}
}

func TestArticleNormalize_ReadingTimeOnlyForChangedContent(t *testing.T) {
	now := time.Now()
	stored := newTestArticle()
	stored.Normalize(nil, now)
	stored.ReadingTime.Ar = 9

	update := *stored
	update.Content.En = "<p>short</p>"
	update.Normalize(stored, now)

	if update.ReadingTime.Ar != 9 {
		t.Errorf("ReadingTime.Ar = %d, want unchanged 9", update.ReadingTime.Ar)
	}
	if update.ReadingTime.En != 1 {
		t.Errorf("ReadingTime.En = %d, want 1", update.ReadingTime.En)
	}
}

func TestArticleNormalize_UpdateKeepsIdentity(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	stored := newTestArticle()
	stored.Normalize(nil, created)
	stored.Views = 42

	update := *stored
	update.ID = "something-else"
	update.Views = 0
	update.Normalize(stored, time.Now())

	if update.ID != stored.ID || update.Views != 42 || !update.CreatedAt.Equal(created) {
		t.Errorf("update must keep id, views and createdAt: %+v", update)
	}
}

func TestArticleNormalize_UpdateWithoutSlugKeepsStoredSlug(t *testing.T) {
	stored := newTestArticle()
	stored.Normalize(nil, time.Now())
	slug := stored.Slug

	update := *stored
	update.Slug = ""
	update.Title.En = "A Completely Different Title"
	update.Normalize(stored, time.Now())

	if update.Slug != slug {
		t.Errorf("Slug = %q, want stored slug %q", update.Slug, slug)
	}
}

func TestCategoryNormalize(t *testing.T) {
	now := time.Now()
	c := &Category{Slug: " Awareness ", Name: Bilingual{Ar: " وعي ", En: " Awareness "}}
	c.Normalize(nil, now)

	if c.Slug != "awareness" || c.Icon != DefaultCategoryIcon || c.Name.En != "Awareness" {
		t.Errorf("unexpected normalized category: %+v", c)
	}

	update := *c
	update.Slug = "self-development"
	update.Normalize(c, now.Add(time.Minute))
	if update.Slug != "awareness" {
		t.Errorf("category slug is immutable, got %q", update.Slug)
	}
}

func TestRefProjection(t *testing.T) {
	c := &Category{ID: "c1", Slug: "awareness", Description: Bilingual{En: "desc"}}
	if c.Ref(ProjectionSummary).Description != nil {
		t.Error("summary projection must not include description")
	}
	if d := c.Ref(ProjectionDetail).Description; d == nil || d.En != "desc" {
		t.Error("detail projection must include description")
	}

	a := &Author{ID: "a1", Credentials: Bilingual{En: "PhD"}}
	if a.Ref(ProjectionSummary).Credentials != nil {
		t.Error("summary projection must not include credentials")
	}
	if cr := a.Ref(ProjectionDetail).Credentials; cr == nil || cr.En != "PhD" {
		t.Error("detail projection must include credentials")
	}
}
