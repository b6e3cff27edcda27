package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-api/internal/domain"
	"content-api/internal/mocks"
)

func newAuthorRouter(t *testing.T) (*gin.Engine, *mocks.MockContentServiceInterface) {
	t.Helper()
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewAuthorHandler(mockService)

	router := gin.New()
	router.GET("/api/authors", h.List)
	router.GET("/api/authors/:id", h.ByID)
	return router, mockService
}

func TestAuthors(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, mockService := newAuthorRouter(t)
		mockService.EXPECT().ListAuthors(mock.Anything).Return([]domain.Author{
			{ID: testArticleID, Name: domain.Bilingual{Ar: "كاتب", En: "Writer"}, IsActive: true},
		}, nil)

		w := doGet(router, "/api/authors")

		require.Equal(t, http.StatusOK, w.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		require.Len(t, got, 1)
	})

	t.Run("by id", func(t *testing.T) {
		router, mockService := newAuthorRouter(t)
		mockService.EXPECT().GetAuthor(mock.Anything, testArticleID).
			Return(&domain.Author{ID: testArticleID, IsActive: true}, nil)

		w := doGet(router, "/api/authors/"+testArticleID)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inactive or missing author is 404", func(t *testing.T) {
		router, mockService := newAuthorRouter(t)
		mockService.EXPECT().GetAuthor(mock.Anything, testArticleID).Return(nil, domain.NotFound("Author"))

		w := doGet(router, "/api/authors/"+testArticleID)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Author not found", decode(t, w).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		router, _ := newAuthorRouter(t)

		w := doGet(router, "/api/authors/507f1f77bcf86cd799439011")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgInvalidID, decode(t, w).Message)
	})
}
