package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// OperationRepository persists operations and projects their history.
type OperationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewOperationRepository(db *sqlx.DB, txGetter TxGetter) *OperationRepository {
	return &OperationRepository{db: db, txGetter: txGetter}
}

// Create inserts op. A reused id yields ErrOperationAlreadyExists.
func (r *OperationRepository) Create(ctx context.Context, op *models.Operation) error {
	const query = `
		INSERT INTO operations (
			id, state, transaction_type_id, currency_id,
			owner_wallet_id, owner_wallet_account_id, beneficiary_wallet_id, beneficiary_wallet_account_id,
			raw_value, fee, value, owner_requested_raw_value, owner_requested_fee,
			description, operation_ref, analysis_tags,
			owner_user_limit_tracker_id, beneficiary_user_limit_tracker_id,
			created_at, updated_at
		) VALUES (
			:id, :state, :transaction_type_id, :currency_id,
			:owner_wallet_id, :owner_wallet_account_id, :beneficiary_wallet_id, :beneficiary_wallet_account_id,
			:raw_value, :fee, :value, :owner_requested_raw_value, :owner_requested_fee,
			:description, :operation_ref, :analysis_tags,
			:owner_user_limit_tracker_id, :beneficiary_user_limit_tracker_id,
			:created_at, :updated_at
		)
	`

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, op)
	logQuery(query, []any{op.ID}, err)
	if isUniqueViolation(err) {
		return ErrOperationAlreadyExists
	}
	return err
}

// Update writes back the mutable fields of op.
func (r *OperationRepository) Update(ctx context.Context, op *models.Operation) error {
	const query = `
		UPDATE operations
		SET state = :state, operation_ref = :operation_ref, analysis_tags = :analysis_tags, updated_at = :updated_at
		WHERE id = :id
	`

	op.UpdatedAt = time.Now().UTC()
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, op)
	logQuery(query, []any{op.ID}, err)
	return err
}

// GetValueAndCreatedAtByOwnerWalletAccount returns the value and creation time of the
// operations debiting walletAccountID within [createdAfter, createdBefore).
func (r *OperationRepository) GetValueAndCreatedAtByOwnerWalletAccount(
	ctx context.Context,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	transactionTypeIDs []uuid.UUID,
	states []models.OperationState,
) ([]models.OperationValue, error) {
	const query = `
		SELECT value, created_at
		FROM operations
		WHERE owner_wallet_account_id = $1
		  AND created_at >= $2 AND created_at < $3
		  AND transaction_type_id = ANY($4)
		  AND state = ANY($5)
	`
	return r.history(ctx, query, walletAccountID, createdAfter, createdBefore, transactionTypeIDs, states)
}

// GetValueAndCreatedAtByBeneficiaryWalletAccount returns the value and creation time of
// the operations crediting walletAccountID within [createdAfter, createdBefore).
func (r *OperationRepository) GetValueAndCreatedAtByBeneficiaryWalletAccount(
	ctx context.Context,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	transactionTypeIDs []uuid.UUID,
	states []models.OperationState,
) ([]models.OperationValue, error) {
	const query = `
		SELECT value, created_at
		FROM operations
		WHERE beneficiary_wallet_account_id = $1
		  AND created_at >= $2 AND created_at < $3
		  AND transaction_type_id = ANY($4)
		  AND state = ANY($5)
	`
	return r.history(ctx, query, walletAccountID, createdAfter, createdBefore, transactionTypeIDs, states)
}

func (r *OperationRepository) history(
	ctx context.Context,
	query string,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	transactionTypeIDs []uuid.UUID,
	states []models.OperationState,
) ([]models.OperationValue, error) {
	stateTags := make(pq.StringArray, 0, len(states))
	for _, s := range states {
		stateTags = append(stateTags, string(s))
	}

	args := []any{walletAccountID, createdAfter, createdBefore, pq.Array(transactionTypeIDs), stateTags}
	var values []models.OperationValue
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &values, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return values, nil
}
