package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is currency reference data.
type Currency struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Unique currency identifier
	Tag       string    `json:"tag" db:"tag"`               // Currency tag (e.g., USD, BRL)
	Decimals  int32     `json:"decimals" db:"decimals"`     // Minor unit precision
	State     State     `json:"state" db:"state"`           // Activation state
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the currency was created
}

// Wallet is a user-owned container of wallet accounts.
type Wallet struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	State     State     `json:"state" db:"state"`           // Activation state
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}

// WalletAccount is a currency-scoped balance bucket of a wallet.
type WalletAccount struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	WalletID      uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	CurrencyID    uuid.UUID       `json:"currency_id" db:"currency_id"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	PendingAmount decimal.Decimal `json:"pending_amount" db:"pending_amount"` // funds blocked by pending operations
	State         State           `json:"state" db:"state"`
	Version       int64           `json:"version" db:"version"` // optimistic lock
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Block reserves value: the balance decreases and the pending amount grows by the same value.
func (a *WalletAccount) Block(value decimal.Decimal) {
	a.Balance = a.Balance.Sub(value)
	a.PendingAmount = a.PendingAmount.Add(value)
}

// WalletAccountCache is the denormalized per-user snapshot of a wallet account.
type WalletAccountCache struct {
	WalletAccountID uuid.UUID       `json:"wallet_account_id"`
	WalletID        uuid.UUID       `json:"wallet_id"`
	UserID          uuid.UUID       `json:"user_id"`
	CurrencyTag     string          `json:"currency_tag"`
	Balance         decimal.Decimal `json:"balance"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
