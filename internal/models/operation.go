package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Operation is one ledger movement, optionally linked to a paired operation in another currency.
type Operation struct {
	ID                            uuid.UUID           `json:"id" db:"id"`
	State                         OperationState      `json:"state" db:"state"`
	TransactionTypeID             uuid.UUID           `json:"transaction_type_id" db:"transaction_type_id"`
	CurrencyID                    uuid.UUID           `json:"currency_id" db:"currency_id"`
	OwnerWalletID                 *uuid.UUID          `json:"owner_wallet_id,omitempty" db:"owner_wallet_id"`
	OwnerWalletAccountID          *uuid.UUID          `json:"owner_wallet_account_id,omitempty" db:"owner_wallet_account_id"`
	BeneficiaryWalletID           *uuid.UUID          `json:"beneficiary_wallet_id,omitempty" db:"beneficiary_wallet_id"`
	BeneficiaryWalletAccountID    *uuid.UUID          `json:"beneficiary_wallet_account_id,omitempty" db:"beneficiary_wallet_account_id"`
	RawValue                      decimal.Decimal     `json:"raw_value" db:"raw_value"`
	Fee                           decimal.Decimal     `json:"fee" db:"fee"` // always a non-negative magnitude
	Value                         decimal.Decimal     `json:"value" db:"value"` // Fee + RawValue
	OwnerRequestedRawValue        decimal.NullDecimal `json:"owner_requested_raw_value" db:"owner_requested_raw_value"`
	OwnerRequestedFee             decimal.NullDecimal `json:"owner_requested_fee" db:"owner_requested_fee"`
	Description                   string              `json:"description" db:"description"`
	OperationRef                  *uuid.UUID          `json:"operation_ref,omitempty" db:"operation_ref"` // paired operation
	AnalysisTags                  pq.StringArray      `json:"analysis_tags" db:"analysis_tags"`
	OwnerUserLimitTrackerID       *uuid.UUID          `json:"owner_user_limit_tracker_id,omitempty" db:"owner_user_limit_tracker_id"`
	BeneficiaryUserLimitTrackerID *uuid.UUID          `json:"beneficiary_user_limit_tracker_id,omitempty" db:"beneficiary_user_limit_tracker_id"`
	CreatedAt                     time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt                     time.Time           `json:"updated_at" db:"updated_at"`
}

// OperationValue is the projection used to recompute limit usage from history.
type OperationValue struct {
	Value     decimal.Decimal `db:"value"`
	CreatedAt time.Time       `db:"created_at"`
}
