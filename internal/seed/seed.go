// Package seed loads starter categories, authors and articles into the store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"content-api/internal/domain"
	"content-api/internal/logger"
)

//go:embed fixture.yaml
var defaultFixture []byte

// ContentWriter creates entities through the write path, so seeded records
// are normalized and validated like any other write.
type ContentWriter interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	CreateAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error)
	CreateArticle(ctx context.Context, article *domain.Article) (*domain.Article, error)
}

// ClearFunc removes all existing content before seeding.
type ClearFunc func(ctx context.Context) error

// Fixture is the document format of a seed file.
type Fixture struct {
	Categories []CategoryFixture `yaml:"categories"`
	Authors    []AuthorFixture   `yaml:"authors"`
	Articles   []ArticleFixture  `yaml:"articles"`
}

// CategoryFixture describes one category.
type CategoryFixture struct {
	Slug        string           `yaml:"slug"`
	Name        domain.Bilingual `yaml:"name"`
	Description domain.Bilingual `yaml:"description"`
	Icon        string           `yaml:"icon"`
	Order       int              `yaml:"order"`
}

// AuthorFixture describes one author. Key is how articles refer to it.
type AuthorFixture struct {
	Key         string             `yaml:"key"`
	Name        domain.Bilingual   `yaml:"name"`
	Bio         domain.Bilingual   `yaml:"bio"`
	Credentials domain.Bilingual   `yaml:"credentials"`
	Image       string             `yaml:"image"`
	SocialLinks domain.SocialLinks `yaml:"socialLinks"`
	Email       string             `yaml:"email"`
}

// ArticleFixture describes one article. Category is a category slug and
// Author an author key from the same fixture.
type ArticleFixture struct {
	Slug          string           `yaml:"slug"`
	Category      string           `yaml:"category"`
	Author        string           `yaml:"author"`
	Title         domain.Bilingual `yaml:"title"`
	Excerpt       domain.Bilingual `yaml:"excerpt"`
	Content       domain.Bilingual `yaml:"content"`
	FeaturedImage string           `yaml:"featuredImage"`
	Tags          []string         `yaml:"tags"`
	Status        string           `yaml:"status"`
	IsEditorsPick bool             `yaml:"isEditorsPick"`
	PublishedAt   *time.Time       `yaml:"publishedAt"`
}

// Result counts the entities created by a run.
type Result struct {
	Categories int
	Authors    int
	Articles   int
}

// LoadFixture decodes a seed document. Unknown keys are rejected.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// DefaultFixture returns the fixture embedded in the binary.
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(bytes.NewReader(defaultFixture))
}

// Seeder writes a fixture through a ContentWriter.
type Seeder struct {
	writer ContentWriter
	clear  ClearFunc
	log    *slog.Logger
}

// NewSeeder creates a Seeder. A nil clear keeps existing content, which is
// what production runs use.
func NewSeeder(writer ContentWriter, clear ClearFunc) *Seeder {
	return &Seeder{
		writer: writer,
		clear:  clear,
		log:    logger.WithComponent("seed"),
	}
}

// Run clears existing content when configured to, then creates categories,
// authors and articles in that order. It stops at the first failure.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	if s.clear != nil {
		if err := s.clear(ctx); err != nil {
			return res, fmt.Errorf("clear content: %w", err)
		}
		s.log.Info("Cleared existing content")
	}

	categoryIDs := make(map[string]string, len(f.Categories))
	for _, cf := range f.Categories {
		created, err := s.writer.CreateCategory(ctx, &domain.Category{
			Slug:        cf.Slug,
			Name:        cf.Name,
			Description: cf.Description,
			Icon:        cf.Icon,
			Order:       cf.Order,
		})
		if err != nil {
			return res, fmt.Errorf("create category %q: %w", cf.Slug, err)
		}
		categoryIDs[cf.Slug] = created.ID
		res.Categories++
	}

	authorIDs := make(map[string]string, len(f.Authors))
	for _, af := range f.Authors {
		if _, dup := authorIDs[af.Key]; dup {
			return res, fmt.Errorf("duplicate author key %q", af.Key)
		}
		created, err := s.writer.CreateAuthor(ctx, &domain.Author{
			Name:        af.Name,
			Bio:         af.Bio,
			Credentials: af.Credentials,
			Image:       af.Image,
			SocialLinks: af.SocialLinks,
			Email:       af.Email,
		})
		if err != nil {
			return res, fmt.Errorf("create author %q: %w", af.Key, err)
		}
		authorIDs[af.Key] = created.ID
		res.Authors++
	}

	for _, art := range f.Articles {
		categoryID, ok := categoryIDs[art.Category]
		if !ok {
			return res, fmt.Errorf("article %q: unknown category %q", art.Slug, art.Category)
		}
		authorID, ok := authorIDs[art.Author]
		if !ok {
			return res, fmt.Errorf("article %q: unknown author %q", art.Slug, art.Author)
		}

		if _, err := s.writer.CreateArticle(ctx, &domain.Article{
			Slug:          art.Slug,
			Title:         art.Title,
			Excerpt:       art.Excerpt,
			Content:       art.Content,
			CategoryID:    categoryID,
			AuthorID:      authorID,
			FeaturedImage: art.FeaturedImage,
			Tags:          art.Tags,
			Status:        domain.ArticleStatus(art.Status),
			IsEditorsPick: art.IsEditorsPick,
			PublishedAt:   art.PublishedAt,
		}); err != nil {
			return res, fmt.Errorf("create article %q: %w", art.Slug, err)
		}
		res.Articles++
	}

	s.log.Info("Seed complete",
		slog.Int("categories", res.Categories),
		slog.Int("authors", res.Authors),
		slog.Int("articles", res.Articles),
	)
	return res, nil
}
