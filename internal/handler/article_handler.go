package handler

import (
	"github.com/gin-gonic/gin"

	"content-api/internal/service"
	"content-api/internal/validator"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	content   service.ContentServiceInterface
	validator *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(content service.ContentServiceInterface, v *validator.Validator) *ArticleHandler {
	return &ArticleHandler{
		content:   content,
		validator: v,
	}
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c, h.validator)
	if !ok {
		return
	}

	page, err := h.content.ListPublished(c.Request.Context(), service.ListParams{
		Page:         q.PageValue(),
		Limit:        q.LimitValue(),
		CategorySlug: q.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// EditorsPicks handles GET /articles/editors-picks
func (h *ArticleHandler) EditorsPicks(c *gin.Context) {
	q, ok := bindListQuery(c, h.validator)
	if !ok {
		return
	}

	articles, err := h.content.EditorsPicks(c.Request.Context(), q.LimitValue())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(articles))
}

// Latest handles GET /articles/latest
func (h *ArticleHandler) Latest(c *gin.Context) {
	q, ok := bindListQuery(c, h.validator)
	if !ok {
		return
	}

	articles, err := h.content.Latest(c.Request.Context(), q.LimitValue())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(articles))
}

// Slugs handles GET /articles/slugs
func (h *ArticleHandler) Slugs(c *gin.Context) {
	slugs, err := h.content.AllSlugs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(slugs))
}

// BySlug handles GET /articles/slug/:slug
func (h *ArticleHandler) BySlug(c *gin.Context) {
	slug, ok := slugParam(c, "slug")
	if !ok {
		return
	}

	article, err := h.content.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, article)
}

// ByCategory handles GET /articles/category/:categorySlug
func (h *ArticleHandler) ByCategory(c *gin.Context) {
	slug, ok := slugParam(c, "categorySlug")
	if !ok {
		return
	}
	q, ok := bindListQuery(c, h.validator)
	if !ok {
		return
	}

	page, err := h.content.ListByCategory(c.Request.Context(), slug, q.PageValue(), q.LimitValue())
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// Related handles GET /articles/:id/related
func (h *ArticleHandler) Related(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	q, ok := bindListQuery(c, h.validator)
	if !ok {
		return
	}

	articles, err := h.content.Related(c.Request.Context(), id, q.LimitValue())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, list(articles))
}
