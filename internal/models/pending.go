package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingWalletAccountTransaction is a staged, not yet committed balance delta.
type PendingWalletAccountTransaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OperationID     uuid.UUID       `json:"operation_id" db:"operation_id"`
	WalletAccountID uuid.UUID       `json:"wallet_account_id" db:"wallet_account_id"`
	Value           decimal.Decimal `json:"value" db:"value"` // signed: negative debits, positive credits
	TTL             *time.Time      `json:"ttl,omitempty" db:"ttl"` // nil while active
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// Active reports whether the staged delta still counts at now.
// Rows older than maxAge are treated as abandoned.
func (p *PendingWalletAccountTransaction) Active(now time.Time, maxAge time.Duration) bool {
	if p.TTL != nil {
		return false
	}
	return maxAge <= 0 || p.CreatedAt.After(now.Add(-maxAge))
}
