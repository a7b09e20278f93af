package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// TransactionTypeRepository reads transaction types.
type TransactionTypeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionTypeRepository(db *sqlx.DB, txGetter TxGetter) *TransactionTypeRepository {
	return &TransactionTypeRepository{db: db, txGetter: txGetter}
}

// GetByTag returns the transaction type with tag, or nil.
func (r *TransactionTypeRepository) GetByTag(ctx context.Context, tag string) (*models.TransactionType, error) {
	const query = `
		SELECT id, tag, state, participants, limit_type_id, created_at
		FROM transaction_types
		WHERE tag = $1
	`

	var tt models.TransactionType
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tt, query, tag)
	logQuery(query, []any{tag}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

// GetByLimitType lists the transaction types governed by limitTypeID.
func (r *TransactionTypeRepository) GetByLimitType(ctx context.Context, limitTypeID uuid.UUID) ([]models.TransactionType, error) {
	const query = `
		SELECT id, tag, state, participants, limit_type_id, created_at
		FROM transaction_types
		WHERE limit_type_id = $1
	`

	var types []models.TransactionType
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &types, query, limitTypeID)
	logQuery(query, []any{limitTypeID}, err)
	if err != nil {
		return nil, err
	}
	return types, nil
}

// CurrencyRepository reads currencies.
type CurrencyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCurrencyRepository(db *sqlx.DB, txGetter TxGetter) *CurrencyRepository {
	return &CurrencyRepository{db: db, txGetter: txGetter}
}

// GetByTag returns the currency with tag, or nil.
func (r *CurrencyRepository) GetByTag(ctx context.Context, tag string) (*models.Currency, error) {
	const query = `
		SELECT id, tag, decimals, state, created_at
		FROM currencies
		WHERE tag = $1
	`

	var c models.Currency
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, query, tag)
	logQuery(query, []any{tag}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LimitTypeRepository reads limit types.
type LimitTypeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLimitTypeRepository(db *sqlx.DB, txGetter TxGetter) *LimitTypeRepository {
	return &LimitTypeRepository{db: db, txGetter: txGetter}
}

// GetByID returns the limit type with id, or nil.
func (r *LimitTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LimitType, error) {
	const query = `
		SELECT id, tag, currency_id, period_start, check_side, created_at
		FROM limit_types
		WHERE id = $1
	`

	var lt models.LimitType
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &lt, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lt, nil
}
