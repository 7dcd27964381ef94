package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/wesshacks/wesshacks/internal/middlewares"
)

// executor returns the request transaction when middleware opened one,
// otherwise the shared pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// oneline collapses a query to a single line for logging.
func oneline(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
