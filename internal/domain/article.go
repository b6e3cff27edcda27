package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"content-api/internal/textutil"
)

// ArticleStatus is the editorial state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []ArticleStatus{StatusDraft, StatusPublished, StatusArchived}

// ReadingTime is the estimated reading time in minutes per language.
type ReadingTime struct {
	Ar int `json:"ar"`
	En int `json:"en"`
}

// SEO holds optional search metadata that overrides title and excerpt.
type SEO struct {
	Title       Bilingual `json:"title"`
	Description Bilingual `json:"description"`
	Keywords    []string  `json:"keywords"`
}

// Article represents an article entity. Category and author are held as
// references by id; see ArticleView for the resolved form.
type Article struct {
	ID            string        `json:"_id"`
	Title         Bilingual     `json:"title"`
	Slug          string        `json:"slug"`
	Excerpt       Bilingual     `json:"excerpt"`
	Content       Bilingual     `json:"content"`
	CategoryID    string        `json:"-"`
	AuthorID      string        `json:"-"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	Tags          []string      `json:"tags"`
	Status        ArticleStatus `json:"status"`
	IsEditorsPick bool          `json:"isEditorsPick"`
	ReadingTime   ReadingTime   `json:"readingTime"`
	SEO           SEO           `json:"seo"`
	PublishedAt   *time.Time    `json:"publishedAt,omitempty"`
	Views         int64         `json:"views"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// IsPublished reports whether the article is publicly visible.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// Normalize computes derived fields before persistence. prev is the stored
// record for updates and nil for inserts. It is deterministic for a given
// (article, prev, now) and runs on every write:
//   - slug is derived from the English title when empty
//   - publishedAt is set on the first transition into published and kept afterwards
//   - reading time is recomputed only for languages whose content changed
func (a *Article) Normalize(prev *Article, now time.Time) {
	a.Title = a.Title.Trimmed()
	a.Excerpt = a.Excerpt.Trimmed()
	a.Content = Bilingual{
		Ar: textutil.SanitizeHTML(a.Content.Ar),
		En: textutil.SanitizeHTML(a.Content.En),
	}
	a.SEO.Title = a.SEO.Title.Trimmed()
	a.SEO.Description = a.SEO.Description.Trimmed()
	a.SEO.Keywords = normalizeList(a.SEO.Keywords, false)
	a.Tags = normalizeList(a.Tags, true)
	a.FeaturedImage = strings.TrimSpace(a.FeaturedImage)
	a.CategoryID = strings.TrimSpace(a.CategoryID)
	a.AuthorID = strings.TrimSpace(a.AuthorID)

	a.Slug = strings.ToLower(strings.TrimSpace(a.Slug))
	if a.Slug == "" && prev != nil {
		a.Slug = prev.Slug
	}
	if a.Slug == "" {
		a.Slug = textutil.Slugify(a.Title.En)
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}

	if prev == nil {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.Views = 0
		a.CreatedAt = now
		a.UpdatedAt = now
		a.ReadingTime = ReadingTime{
			Ar: textutil.ReadingMinutes(a.Content.Ar),
			En: textutil.ReadingMinutes(a.Content.En),
		}
		// A caller may import a historical publication date, but only for
		// articles that are created published.
		if a.Status != StatusPublished {
			a.PublishedAt = nil
		} else if a.PublishedAt == nil {
			a.PublishedAt = &now
		}
		return
	}

	a.ID = prev.ID
	a.Views = prev.Views
	a.CreatedAt = prev.CreatedAt
	a.UpdatedAt = now

	a.ReadingTime = prev.ReadingTime
	if a.Content.Ar != prev.Content.Ar {
		a.ReadingTime.Ar = textutil.ReadingMinutes(a.Content.Ar)
	}
	if a.Content.En != prev.Content.En {
		a.ReadingTime.En = textutil.ReadingMinutes(a.Content.En)
	}

	switch {
	case prev.PublishedAt != nil:
		a.PublishedAt = prev.PublishedAt
	case a.Status == StatusPublished && prev.Status != StatusPublished:
		a.PublishedAt = &now
	default:
		a.PublishedAt = nil
	}
}

// normalizeList trims entries, drops empties and duplicates, and optionally lowercases.
func normalizeList(items []string, lower bool) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if lower {
			item = strings.ToLower(item)
		}
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// ArticleSlug is the pre-rendering entry for one published article.
type ArticleSlug struct {
	Slug      string    `json:"slug"`
	Category  string    `json:"category,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
