package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// WalletRepository reads wallets.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletRepository(db *sqlx.DB, txGetter TxGetter) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// GetByID returns the wallet with id, or nil.
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	const query = `
		SELECT id, user_id, state, created_at, updated_at
		FROM wallets
		WHERE id = $1
	`

	var w models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// WalletAccountRepository reads wallet accounts and writes their balances under
// optimistic versioning.
type WalletAccountRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletAccountRepository(db *sqlx.DB, txGetter TxGetter) *WalletAccountRepository {
	return &WalletAccountRepository{db: db, txGetter: txGetter}
}

const walletAccountColumns = `id, wallet_id, currency_id, balance, pending_amount, state, version, created_at, updated_at`

// GetByWalletAndCurrency returns the account of walletID in currencyID, or nil.
func (r *WalletAccountRepository) GetByWalletAndCurrency(ctx context.Context, walletID, currencyID uuid.UUID) (*models.WalletAccount, error) {
	query := `SELECT ` + walletAccountColumns + ` FROM wallet_accounts WHERE wallet_id = $1 AND currency_id = $2`

	var a models.WalletAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &a, query, walletID, currencyID)
	logQuery(query, []any{walletID, currencyID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID returns the wallet account with id, or nil.
func (r *WalletAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WalletAccount, error) {
	query := `SELECT ` + walletAccountColumns + ` FROM wallet_accounts WHERE id = $1`

	var a models.WalletAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &a, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update writes balance and pending amount if the account still has a.Version,
// then bumps a.Version.
func (r *WalletAccountRepository) Update(ctx context.Context, a *models.WalletAccount) error {
	const query = `
		UPDATE wallet_accounts
		SET balance = $1, pending_amount = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
	`

	now := time.Now().UTC()
	args := []any{a.Balance, a.PendingAmount, now, a.ID, a.Version}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	a.Version++
	a.UpdatedAt = now
	return nil
}
