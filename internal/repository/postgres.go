package repository

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"content-api/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
	pgCheckViolation      = "23514"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// translateError maps driver errors to domain errors. resource names the
// entity for not-found errors.
func translateError(err error, resource, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case pgForeignKeyViolation:
			return &domain.ReferenceError{Field: referenceField(pgErr.ConstraintName), Value: pgErr.Detail}
		case pgInvalidTextRepr:
			return domain.NotFound(resource)
		case pgCheckViolation:
			return domain.NewValidationError(map[string]string{
				pgErr.ConstraintName: "Value is not allowed",
			})
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func referenceField(constraint string) string {
	switch constraint {
	case "articles_category_id_fkey":
		return "category"
	case "articles_author_id_fkey":
		return "author"
	default:
		return "reference"
	}
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
