package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is used when a category is stored without an icon.
const DefaultCategoryIcon = "✦"

// ValidCategorySlugs contains the closed set of category slugs.
var ValidCategorySlugs = []string{"awareness", "self-development"}

// Category represents a content category.
type Category struct {
	ID           string    `json:"_id"`
	Slug         string    `json:"slug"`
	Name         Bilingual `json:"name"`
	Description  Bilingual `json:"description"`
	Icon         string    `json:"icon"`
	Order        int       `json:"order"`
	IsActive     bool      `json:"isActive"`
	ArticleCount *int64    `json:"articleCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Normalize prepares a category for persistence. prev is the stored record
// for updates and nil for inserts. The slug of a stored category never changes.
func (c *Category) Normalize(prev *Category, now time.Time) {
	c.Name = c.Name.Trimmed()
	c.Description = c.Description.Trimmed()
	c.Icon = strings.TrimSpace(c.Icon)
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}

	if prev == nil {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))
		c.CreatedAt = now
		c.UpdatedAt = now
		return
	}

	c.ID = prev.ID
	c.Slug = prev.Slug
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = now
}
