package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationParticipant describes one side of an operation creation request
// swagger:model OperationParticipant
type OperationParticipant struct {
	// Identifier the caller assigns to the operation of this side
	// required: true
	OperationID uuid.UUID `json:"operation_id"`

	// Wallet of the participant
	// required: true
	WalletID uuid.UUID `json:"wallet_id"`

	// Currency tag of the wallet account
	// required: true
	// example: BRL
	Currency string `json:"currency"`

	// Amount moved, must be positive
	// required: true
	// example: 80000
	RawValue decimal.Decimal `json:"raw_value"`

	// Fee charged, must not be negative
	// example: 5000
	Fee decimal.Decimal `json:"fee"`

	// Free text description
	// required: true
	Description string `json:"description"`

	// Spend at most the available balance, clamping fee first and then raw value
	AllowAvailableRawValue bool `json:"allow_available_raw_value"`

	// Raw value originally requested before any caller-side adjustment
	RequestedRawValue decimal.NullDecimal `json:"requested_raw_value"`

	// Fee originally requested before any caller-side adjustment
	RequestedFee decimal.NullDecimal `json:"requested_fee"`
}

// CreateOperationRequest represents the JSON body for creating operations
// swagger:model CreateOperationRequest
type CreateOperationRequest struct {
	// Transaction type tag
	// required: true
	// example: PIX_TRANSFER
	TransactionType string `json:"transaction_type"`

	// Debited side
	Owner *OperationParticipant `json:"owner,omitempty"`

	// Credited side
	Beneficiary *OperationParticipant `json:"beneficiary,omitempty"`
}

// CreateOperationResponse represents the operations created for a request
// swagger:model CreateOperationResponse
type CreateOperationResponse struct {
	OwnerOperation       *Operation `json:"owner_operation"`
	BeneficiaryOperation *Operation `json:"beneficiary_operation"`
}

// ErrorResponse represents a structured business error
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error code
	// example: 0018
	Code string `json:"code"`

	// Short title
	// example: Insufficient Funds
	Title string `json:"title"`

	// Human readable message
	Message string `json:"message"`

	// Entity the error refers to
	// example: UserLimit
	Entity string `json:"entity,omitempty"`

	// Snapshot of the values involved in the failed rule
	Details any `json:"details,omitempty"`
}
