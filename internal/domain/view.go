package domain

// Projection selects which fields of a referenced entity are resolved into
// an article result.
type Projection int

const (
	// ProjectionSummary is used by list results: category (slug, name) and
	// author (name, bio, image).
	ProjectionSummary Projection = iota
	// ProjectionDetail is used by the article page: category adds description,
	// author adds credentials.
	ProjectionDetail
)

// CategoryRef is a projected category inside an article result.
type CategoryRef struct {
	ID          string     `json:"_id"`
	Slug        string     `json:"slug"`
	Name        Bilingual  `json:"name"`
	Description *Bilingual `json:"description,omitempty"`
}

// AuthorRef is a projected author inside an article result.
type AuthorRef struct {
	ID          string     `json:"_id"`
	Name        Bilingual  `json:"name"`
	Bio         Bilingual  `json:"bio"`
	Image       string     `json:"image,omitempty"`
	Credentials *Bilingual `json:"credentials,omitempty"`
}

// ArticleView is an article with its references resolved. A reference whose
// target no longer exists resolves to null.
type ArticleView struct {
	Article
	Category *CategoryRef `json:"category"`
	Author   *AuthorRef   `json:"author"`
}

// Ref projects a category for embedding in an article result.
func (c *Category) Ref(p Projection) *CategoryRef {
	ref := &CategoryRef{ID: c.ID, Slug: c.Slug, Name: c.Name}
	if p == ProjectionDetail {
		desc := c.Description
		ref.Description = &desc
	}
	return ref
}

// Ref projects an author for embedding in an article result.
func (a *Author) Ref(p Projection) *AuthorRef {
	ref := &AuthorRef{ID: a.ID, Name: a.Name, Bio: a.Bio, Image: a.Image}
	if p == ProjectionDetail {
		creds := a.Credentials
		ref.Credentials = &creds
	}
	return ref
}
