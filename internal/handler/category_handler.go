package handler

import (
	"github.com/gin-gonic/gin"

	"content-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	content service.ContentServiceInterface
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(content service.ContentServiceInterface) *CategoryHandler {
	return &CategoryHandler{content: content}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.content.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(categories))
}

// BySlug handles GET /categories/:slug
func (h *CategoryHandler) BySlug(c *gin.Context) {
	slug, ok := slugParam(c, "slug")
	if !ok {
		return
	}

	category, err := h.content.GetCategory(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, category)
}
