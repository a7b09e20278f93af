package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// PendingTransactionRepository persists staged wallet account deltas.
type PendingTransactionRepository interface {
	Create(ctx context.Context, p *models.PendingWalletAccountTransaction) error
	Update(ctx context.Context, p *models.PendingWalletAccountTransaction) error
	GetByWalletAccount(ctx context.Context, walletAccountID uuid.UUID) ([]models.PendingWalletAccountTransaction, error)
}

// PendingLedger stages the balance deltas of in-flight operations so that concurrent
// requests see each other's reservations when computing an available balance.
type PendingLedger struct {
	repo   PendingTransactionRepository
	maxAge time.Duration
	now    func() time.Time
}

// NewPendingLedger creates a PendingLedger. Staged rows older than maxAge no longer count.
func NewPendingLedger(repo PendingTransactionRepository, maxAge time.Duration) *PendingLedger {
	return &PendingLedger{repo: repo, maxAge: maxAge, now: time.Now}
}

// Stage records a signed delta of operationID against a wallet account.
func (l *PendingLedger) Stage(
	ctx context.Context,
	operationID, walletAccountID uuid.UUID,
	value decimal.Decimal,
) (*models.PendingWalletAccountTransaction, error) {
	p := &models.PendingWalletAccountTransaction{
		ID:              uuid.New(),
		OperationID:     operationID,
		WalletAccountID: walletAccountID,
		Value:           value,
		CreatedAt:       l.now(),
	}
	if err := l.repo.Create(ctx, p); err != nil {
		logger.Log.Errorw("failed to stage pending transaction",
			"operation_id", operationID, "wallet_account_id", walletAccountID, "error", err)
		return nil, err
	}
	return p, nil
}

// Expire stamps a TTL on every staged row that is still active.
// It keeps going past failures and returns them joined.
func (l *PendingLedger) Expire(ctx context.Context, staged []*models.PendingWalletAccountTransaction) error {
	var errs []error
	now := l.now()
	for _, p := range staged {
		if p == nil || p.TTL != nil {
			continue
		}
		ttl := now
		p.TTL = &ttl
		if err := l.repo.Update(ctx, p); err != nil {
			p.TTL = nil
			logger.Log.Errorw("failed to expire pending transaction",
				"id", p.ID, "operation_id", p.OperationID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ActiveDelta sums the active staged deltas of a wallet account, skipping the rows
// of excludeOperationID. Pass uuid.Nil to include every operation.
func (l *PendingLedger) ActiveDelta(
	ctx context.Context,
	walletAccountID, excludeOperationID uuid.UUID,
) (decimal.Decimal, error) {
	pendings, err := l.repo.GetByWalletAccount(ctx, walletAccountID)
	if err != nil {
		return decimal.Zero, err
	}

	now := l.now()
	total := decimal.Zero
	for i := range pendings {
		p := &pendings[i]
		if excludeOperationID != uuid.Nil && p.OperationID == excludeOperationID {
			continue
		}
		if p.Active(now, l.maxAge) {
			total = total.Add(p.Value)
		}
	}
	return total, nil
}
