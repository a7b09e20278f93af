package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// PendingTransactionRepository persists staged deltas. It always writes through the
// pool, outside any request transaction, so concurrent requests see staged rows at once.
type PendingTransactionRepository struct {
	db *sqlx.DB
}

func NewPendingTransactionRepository(db *sqlx.DB) *PendingTransactionRepository {
	return &PendingTransactionRepository{db: db}
}

// Create inserts p.
func (r *PendingTransactionRepository) Create(ctx context.Context, p *models.PendingWalletAccountTransaction) error {
	const query = `
		INSERT INTO pending_wallet_account_transactions (id, operation_id, wallet_account_id, value, ttl, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	args := []any{p.ID, p.OperationID, p.WalletAccountID, p.Value, p.TTL, p.CreatedAt}
	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	return err
}

// Update writes the TTL of p.
func (r *PendingTransactionRepository) Update(ctx context.Context, p *models.PendingWalletAccountTransaction) error {
	const query = `UPDATE pending_wallet_account_transactions SET ttl = $1 WHERE id = $2`

	args := []any{p.TTL, p.ID}
	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	return err
}

// GetByWalletAccount lists the staged rows of walletAccountID that were never expired.
func (r *PendingTransactionRepository) GetByWalletAccount(ctx context.Context, walletAccountID uuid.UUID) ([]models.PendingWalletAccountTransaction, error) {
	const query = `
		SELECT id, operation_id, wallet_account_id, value, ttl, created_at
		FROM pending_wallet_account_transactions
		WHERE wallet_account_id = $1 AND ttl IS NULL
	`

	var rows []models.PendingWalletAccountTransaction
	err := r.db.SelectContext(ctx, &rows, query, walletAccountID)
	logQuery(query, []any{walletAccountID}, err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
