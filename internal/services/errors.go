package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Validation errors.
var (
	ErrMissingData     = errors.New("missing required data")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrDataConsistency = errors.New("inconsistent operation data")
)

// Reference data and state errors.
var (
	ErrTransactionTypeNotFound         = errors.New("transaction type not found")
	ErrTransactionTypeNotActive        = errors.New("transaction type not active")
	ErrUnsupportedTransactionTypeState = errors.New("unsupported transaction type state")
	ErrParticipantsMismatch            = errors.New("participants do not satisfy transaction type")
	ErrCurrencyNotFound                = errors.New("currency not found")
	ErrCurrencyNotActive               = errors.New("currency not active")
	ErrWalletNotFound                  = errors.New("wallet not found")
	ErrWalletNotActive                 = errors.New("wallet not active")
	ErrWalletAccountNotFound           = errors.New("wallet account not found")
	ErrWalletAccountNotActive          = errors.New("wallet account not active")
	ErrLimitTypeNotFound               = errors.New("limit type not found")
	ErrGlobalLimitNotFound             = errors.New("global limit not found")
	ErrWalletAccountCacheNotFound      = errors.New("no cached wallet accounts for user")
)

// Funds and limit violations.
var (
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrInsufficientLimit          = errors.New("insufficient limit")
	ErrInsufficientAvailableLimit = errors.New("insufficient available limit")
	ErrAboveMaxAmount             = errors.New("value above maximum amount")
	ErrUnderMinAmount             = errors.New("value under minimum amount")
	ErrAboveMaxNighttimeAmount    = errors.New("value above maximum nighttime amount")
	ErrUnderMinNighttimeAmount    = errors.New("value under minimum nighttime amount")
)

// ErrQuotationNotFound is returned when no source can price a currency pair.
var ErrQuotationNotFound = errors.New("quotation not found")

// FieldError is a validation failure of a single request field.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(err error, field string) error {
	return &FieldError{Err: err, Field: field}
}

// Limit tiers.
const (
	TierCompliance = "compliance"
	TierUser       = "user"
)

// LimitError identifies the limit rule an operation violated.
type LimitError struct {
	Kind      error            `json:"-"`
	Period    string           `json:"period"`
	Tier      string           `json:"tier"`
	Limit     decimal.Decimal  `json:"limit"`
	Used      decimal.Decimal  `json:"used"`
	Value     decimal.Decimal  `json:"value"`
	UserLimit *models.UserLimit `json:"user_limit"`
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s %s limit %s, used %s, value %s",
		e.Kind, e.Tier, e.Period, e.Limit, e.Used, e.Value)
}

func (e *LimitError) Unwrap() error {
	return e.Kind
}

// FundsError reports an owner side that can cover neither with balance nor with credit.
type FundsError struct {
	WalletAccountID uuid.UUID       `json:"wallet_account_id"`
	Available       decimal.Decimal `json:"available"`
	Value           decimal.Decimal `json:"value"`
}

func (e *FundsError) Error() string {
	return fmt.Sprintf("%s: wallet account %s has %s available, %s required",
		ErrInsufficientFunds, e.WalletAccountID, e.Available, e.Value)
}

func (e *FundsError) Unwrap() error {
	return ErrInsufficientFunds
}
