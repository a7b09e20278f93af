package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType defines participant requirements and the governing limit type.
type TransactionType struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Tag          string       `json:"tag" db:"tag"`
	State        State        `json:"state" db:"state"`
	Participants Participants `json:"participants" db:"participants"`
	LimitTypeID  *uuid.UUID   `json:"limit_type_id,omitempty" db:"limit_type_id"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// LimitType defines the currency, period semantics and counted sides of a family of limits.
type LimitType struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Tag         string       `json:"tag" db:"tag"`
	CurrencyID  uuid.UUID    `json:"currency_id" db:"currency_id"`
	PeriodStart PeriodStart  `json:"period_start" db:"period_start"`
	Check       Participants `json:"check" db:"check_side"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
