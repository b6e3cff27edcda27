package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SocialLinks groups an author's public profile links.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Author represents a content author. Email is stored but never serialized.
type Author struct {
	ID           string      `json:"_id"`
	Name         Bilingual   `json:"name"`
	Bio          Bilingual   `json:"bio"`
	Credentials  Bilingual   `json:"credentials,omitzero"`
	Image        string      `json:"image,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks,omitzero"`
	Email        string      `json:"-"`
	IsActive     bool        `json:"isActive"`
	ArticleCount *int64      `json:"articleCount,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Normalize prepares an author for persistence. prev is nil for inserts.
func (a *Author) Normalize(prev *Author, now time.Time) {
	a.Name = a.Name.Trimmed()
	a.Bio = a.Bio.Trimmed()
	a.Credentials = a.Credentials.Trimmed()
	a.Image = strings.TrimSpace(a.Image)
	a.SocialLinks = SocialLinks{
		Twitter:  strings.TrimSpace(a.SocialLinks.Twitter),
		LinkedIn: strings.TrimSpace(a.SocialLinks.LinkedIn),
		Website:  strings.TrimSpace(a.SocialLinks.Website),
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	if prev == nil {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		return
	}

	a.ID = prev.ID
	a.CreatedAt = prev.CreatedAt
	a.UpdatedAt = now
}
