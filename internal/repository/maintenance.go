package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TruncateContent removes every article, author and category in one
// statement. Used by the seed command outside production.
func TruncateContent(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `TRUNCATE TABLE articles, authors, categories`); err != nil {
		return translateError(err, "Content", "truncate content")
	}
	return nil
}
