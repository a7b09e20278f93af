package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LimitValues are the compliance limit amounts shared by GlobalLimit and UserLimit.
// A NULL amount is not enforced. Nighttime bounds are "HH:MM" clock times; an empty
// start or end disables the nighttime window.
type LimitValues struct {
	DailyLimit         decimal.NullDecimal `json:"daily_limit" db:"daily_limit"`
	MonthlyLimit       decimal.NullDecimal `json:"monthly_limit" db:"monthly_limit"`
	YearlyLimit        decimal.NullDecimal `json:"yearly_limit" db:"yearly_limit"`
	NightlyLimit       decimal.NullDecimal `json:"nightly_limit" db:"nightly_limit"`
	MaxAmount          decimal.NullDecimal `json:"max_amount" db:"max_amount"`
	MinAmount          decimal.NullDecimal `json:"min_amount" db:"min_amount"`
	NighttimeMaxAmount decimal.NullDecimal `json:"nighttime_max_amount" db:"nighttime_max_amount"`
	NighttimeMinAmount decimal.NullDecimal `json:"nighttime_min_amount" db:"nighttime_min_amount"`
	NighttimeStart     string              `json:"nighttime_start" db:"nighttime_start"`
	NighttimeEnd       string              `json:"nighttime_end" db:"nighttime_end"`
}

// GlobalLimit holds the compliance-wide defaults of one limit type.
type GlobalLimit struct {
	ID          uuid.UUID `json:"id" db:"id"`
	LimitTypeID uuid.UUID `json:"limit_type_id" db:"limit_type_id"`
	LimitValues
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserLimit holds per-user limit values cloned from the GlobalLimit, the optional
// user overrides and the overdraft allowance.
type UserLimit struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	LimitTypeID uuid.UUID `json:"limit_type_id" db:"limit_type_id"`
	LimitValues

	UserDailyLimit         decimal.NullDecimal `json:"user_daily_limit" db:"user_daily_limit"`
	UserMonthlyLimit       decimal.NullDecimal `json:"user_monthly_limit" db:"user_monthly_limit"`
	UserYearlyLimit        decimal.NullDecimal `json:"user_yearly_limit" db:"user_yearly_limit"`
	UserNightlyLimit       decimal.NullDecimal `json:"user_nightly_limit" db:"user_nightly_limit"`
	UserMaxAmount          decimal.NullDecimal `json:"user_max_amount" db:"user_max_amount"`
	UserMinAmount          decimal.NullDecimal `json:"user_min_amount" db:"user_min_amount"`
	UserNighttimeMaxAmount decimal.NullDecimal `json:"user_nighttime_max_amount" db:"user_nighttime_max_amount"`
	UserNighttimeMinAmount decimal.NullDecimal `json:"user_nighttime_min_amount" db:"user_nighttime_min_amount"`
	UserNighttimeStart     *string             `json:"user_nighttime_start,omitempty" db:"user_nighttime_start"`
	UserNighttimeEnd       *string             `json:"user_nighttime_end,omitempty" db:"user_nighttime_end"`

	CreditBalance decimal.Decimal `json:"credit_balance" db:"credit_balance"` // overdraft allowance
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// NewUserLimit clones the compliance defaults of g for a user.
func NewUserLimit(userID uuid.UUID, g *GlobalLimit, now time.Time) *UserLimit {
	return &UserLimit{
		ID:            uuid.New(),
		UserID:        userID,
		LimitTypeID:   g.LimitTypeID,
		LimitValues:   g.LimitValues,
		CreditBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NighttimeWindow returns the user's nighttime bounds, preferring the user overrides.
func (l *UserLimit) NighttimeWindow() (start, end string) {
	start, end = l.NighttimeStart, l.NighttimeEnd
	if l.UserNighttimeStart != nil && l.UserNighttimeEnd != nil {
		start, end = *l.UserNighttimeStart, *l.UserNighttimeEnd
	}
	return start, end
}

// UserLimitTracker holds the running usage counters of one UserLimit.
type UserLimitTracker struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	UserLimitID      uuid.UUID       `json:"user_limit_id" db:"user_limit_id"`
	UsedDailyLimit   decimal.Decimal `json:"used_daily_limit" db:"used_daily_limit"`
	UsedMonthlyLimit decimal.Decimal `json:"used_monthly_limit" db:"used_monthly_limit"`
	UsedAnnualLimit  decimal.Decimal `json:"used_annual_limit" db:"used_annual_limit"`
	UsedNightlyLimit decimal.Decimal `json:"used_nightly_limit" db:"used_nightly_limit"`
	PeriodStart      PeriodStart     `json:"period_start" db:"period_start"`
	Version          int64           `json:"version" db:"version"` // 0 until first persisted
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// NewUserLimitTracker returns a zeroed tracker for userLimitID.
func NewUserLimitTracker(userLimitID uuid.UUID, periodStart PeriodStart, now time.Time) *UserLimitTracker {
	return &UserLimitTracker{
		ID:               uuid.New(),
		UserLimitID:      userLimitID,
		UsedDailyLimit:   decimal.Zero,
		UsedMonthlyLimit: decimal.Zero,
		UsedAnnualLimit:  decimal.Zero,
		UsedNightlyLimit: decimal.Zero,
		PeriodStart:      periodStart,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Used returns the tracker counters as a UsedLimit.
func (t *UserLimitTracker) Used() UsedLimit {
	return UsedLimit{
		NightlyLimit: t.UsedNightlyLimit,
		DailyLimit:   t.UsedDailyLimit,
		MonthlyLimit: t.UsedMonthlyLimit,
		YearlyLimit:  t.UsedAnnualLimit,
	}
}

// UsedLimit is the consumed amount per period.
type UsedLimit struct {
	NightlyLimit decimal.Decimal
	DailyLimit   decimal.Decimal
	MonthlyLimit decimal.Decimal
	YearlyLimit  decimal.Decimal
}
