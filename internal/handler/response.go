package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"content-api/internal/domain"
	"content-api/internal/logger"
	"content-api/internal/middleware"
	"content-api/internal/textutil"
	"content-api/internal/validator"
)

// Messages returned in the response envelope.
const (
	MsgValidation       = "Validation Error"
	MsgDuplicate        = "Duplicate field value entered"
	MsgStoreUnavailable = middleware.StoreUnavailableMessage
	MsgInternal         = "Internal Server Error"
	MsgInvalidSlug      = "Invalid slug format"
	MsgInvalidID        = "Invalid id format"
	MsgInvalidQuery     = "page and limit must be integers"
)

// Response is the envelope wrapping every API response.
type Response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Errors     []string           `json:"errors,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Category   *domain.Category   `json:"category,omitempty"`
}

// ListQuery holds the optional list parameters of article endpoints.
// Pointers stay nil when a parameter is not supplied.
type ListQuery struct {
	Page     *int   `form:"page"`
	Limit    *int   `form:"limit"`
	Category string `form:"category"`
}

// PageValue returns the requested page or 0 when not supplied.
func (q ListQuery) PageValue() int {
	if q.Page == nil {
		return 0
	}
	return *q.Page
}

// LimitValue returns the requested limit or 0 when not supplied.
func (q ListQuery) LimitValue() int {
	if q.Limit == nil {
		return 0
	}
	return *q.Limit
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondPage(c *gin.Context, page *domain.ArticlePage) {
	pagination := page.Pagination
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       list(page.Articles),
		Pagination: &pagination,
		Category:   page.Category,
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps an error to its status code and envelope. Details of
// unclassified errors are logged and never sent to the client.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		referenceErr  *domain.ReferenceError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: MsgValidation,
			Errors:  validationErr.Messages(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		respondMessage(c, http.StatusBadRequest, MsgDuplicate)
	case errors.As(err, &referenceErr):
		respondMessage(c, http.StatusBadRequest, referenceErr.Error())
	case errors.As(err, &notFoundErr):
		respondMessage(c, http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.WithRequestID(middleware.GetRequestID(c)).Warn("Store unavailable",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		respondMessage(c, http.StatusServiceUnavailable, MsgStoreUnavailable)
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
		respondMessage(c, http.StatusInternalServerError, MsgInternal)
	}
}

// bindListQuery parses and bounds-checks page and limit. It writes the 400
// response itself and reports false when the query is rejected.
func bindListQuery(c *gin.Context, v *validator.Validator) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: MsgValidation,
			Errors:  []string{MsgInvalidQuery},
		})
		return q, false
	}
	if err := v.ValidatePagination(q.Page, q.Limit); err != nil {
		respondError(c, err)
		return q, false
	}
	return q, true
}

// slugParam returns the named path parameter if it is a well-formed slug.
func slugParam(c *gin.Context, name string) (string, bool) {
	slug := c.Param(name)
	if !textutil.IsValidSlug(slug) {
		respondMessage(c, http.StatusBadRequest, MsgInvalidSlug)
		return "", false
	}
	return slug, true
}

// idParam returns the named path parameter if it is a canonical UUID.
func idParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !isCanonicalUUID(id) {
		respondMessage(c, http.StatusBadRequest, MsgInvalidID)
		return "", false
	}
	return id, true
}

// isCanonicalUUID accepts only the hyphenated 36 character form, rejecting
// the braced and URN forms uuid.Parse also understands.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// list keeps empty results serialized as [] rather than null.
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// NoRoute handles requests that match no registered route.
func NoRoute(c *gin.Context) {
	respondMessage(c, http.StatusNotFound, "Route "+c.Request.URL.Path+" not found")
}

// Recovery reports a recovered panic as a 500 envelope. Use with gin.CustomRecovery.
func Recovery(c *gin.Context, recovered any) {
	logger.WithRequestID(middleware.GetRequestID(c)).Error("Panic recovered",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("panic", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Success: false, Message: MsgInternal})
}
