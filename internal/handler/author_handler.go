package handler

import (
	"github.com/gin-gonic/gin"

	"content-api/internal/service"
)

// AuthorHandler handles author-related HTTP requests.
type AuthorHandler struct {
	content service.ContentServiceInterface
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(content service.ContentServiceInterface) *AuthorHandler {
	return &AuthorHandler{content: content}
}

// List handles GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.content.ListAuthors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(authors))
}

// ByID handles GET /authors/:id
func (h *AuthorHandler) ByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	author, err := h.content.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, author)
}
