package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleSearchDocument repeats the indexed expression so the planner can use
// idx_articles_search.
const articleSearchDocument = `to_tsvector('simple',
	coalesce(title->>'ar', '') || ' ' ||
	coalesce(title->>'en', '') || ' ' ||
	coalesce(content->>'ar', '') || ' ' ||
	coalesce(content->>'en', '') || ' ' ||
	article_tags_text(tags))`

func TestArticleSearchIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	r := newRepos(testDB)
	ctx := context.Background()

	category := createCategory(t, r, "awareness", 1)
	author := createAuthor(t, r, "Writer")
	createArticle(t, r, "tagged", category, author, published(time.Now().UTC()))

	var indexDef string
	require.NoError(t, testDB.Pool.QueryRow(ctx,
		"SELECT indexdef FROM pg_indexes WHERE indexname = 'idx_articles_search'").Scan(&indexDef))
	assert.Contains(t, indexDef, "article_tags_text(tags)")

	search := func(term string) []string {
		rows, err := testDB.Pool.Query(ctx,
			"SELECT slug FROM articles WHERE "+articleSearchDocument+" @@ plainto_tsquery('simple', $1)", term)
		require.NoError(t, err)
		defer rows.Close()

		var slugs []string
		for rows.Next() {
			var slug string
			require.NoError(t, rows.Scan(&slug))
			slugs = append(slugs, slug)
		}
		require.NoError(t, rows.Err())
		return slugs
	}

	assert.Equal(t, []string{"tagged"}, search("mindset"), "tags are part of the document")
	assert.Equal(t, []string{"tagged"}, search("growth"))
	assert.Empty(t, search("unrelated"))
}
