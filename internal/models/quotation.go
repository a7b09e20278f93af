package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StreamQuotation is one source's live price of BaseCurrency in QuoteCurrency.
// Lower Priority values win.
type StreamQuotation struct {
	BaseCurrency  string          `json:"base_currency" db:"base_currency"`
	QuoteCurrency string          `json:"quote_currency" db:"quote_currency"`
	Source        string          `json:"source" db:"source"`
	Priority      int             `json:"priority" db:"priority"`
	Price         decimal.Decimal `json:"price" db:"price"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
