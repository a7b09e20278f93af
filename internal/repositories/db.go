package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
)

var (
	// ErrConcurrentModification is returned when a versioned row changed since it was read.
	ErrConcurrentModification = errors.New("concurrent modification detected")
	// ErrOperationAlreadyExists is returned when an operation id is reused.
	ErrOperationAlreadyExists = errors.New("operation already exists")
)

const uniqueViolation = "23505"

// TxGetter returns the transaction bound to ctx, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor prefers the request transaction over the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func logQuery(query string, args []any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
