package services

import (
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Limit periods reported by LimitError.
const (
	PeriodDaily           = "daily"
	PeriodMonthly         = "monthly"
	PeriodYearly          = "yearly"
	PeriodNightly         = "nightly"
	PeriodAmount          = "amount"
	PeriodNighttimeAmount = "nighttime_amount"
)

type limitField func(*models.UserLimit) decimal.NullDecimal

// limitRule is one comparison of the operation value against a compliance limit and
// its user override.
type limitRule struct {
	period      string
	nightlyOnly bool
	compliance  limitField
	user        limitField
	used        func(models.UsedLimit) decimal.Decimal
	violated    func(limit, used, value decimal.Decimal) bool
	kind        error
}

func exceeds(limit, _, value decimal.Decimal) bool {
	return value.GreaterThan(limit)
}

func undercuts(limit, _, value decimal.Decimal) bool {
	return value.LessThan(limit)
}

func exhausts(limit, used, value decimal.Decimal) bool {
	return limit.Sub(used).LessThan(value)
}

// absoluteRules compare the value alone, in evaluation order.
var absoluteRules = []limitRule{
	{
		period:     PeriodDaily,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.DailyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserDailyLimit },
		violated:   exceeds,
		kind:       ErrInsufficientLimit,
	},
	{
		period:     PeriodMonthly,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.MonthlyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserMonthlyLimit },
		violated:   exceeds,
		kind:       ErrInsufficientLimit,
	},
	{
		period:     PeriodYearly,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.YearlyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserYearlyLimit },
		violated:   exceeds,
		kind:       ErrInsufficientLimit,
	},
	{
		period:      PeriodNightly,
		nightlyOnly: true,
		compliance:  func(l *models.UserLimit) decimal.NullDecimal { return l.NightlyLimit },
		user:        func(l *models.UserLimit) decimal.NullDecimal { return l.UserNightlyLimit },
		violated:    exceeds,
		kind:        ErrInsufficientLimit,
	},
	{
		period:      PeriodNighttimeAmount,
		nightlyOnly: true,
		compliance:  func(l *models.UserLimit) decimal.NullDecimal { return l.NighttimeMaxAmount },
		user:        func(l *models.UserLimit) decimal.NullDecimal { return l.UserNighttimeMaxAmount },
		violated:    exceeds,
		kind:        ErrAboveMaxNighttimeAmount,
	},
	{
		period:      PeriodNighttimeAmount,
		nightlyOnly: true,
		compliance:  func(l *models.UserLimit) decimal.NullDecimal { return l.NighttimeMinAmount },
		user:        func(l *models.UserLimit) decimal.NullDecimal { return l.UserNighttimeMinAmount },
		violated:    undercuts,
		kind:        ErrUnderMinNighttimeAmount,
	},
	{
		period:     PeriodAmount,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.MaxAmount },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserMaxAmount },
		violated:   exceeds,
		kind:       ErrAboveMaxAmount,
	},
	{
		period:     PeriodAmount,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.MinAmount },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserMinAmount },
		violated:   undercuts,
		kind:       ErrUnderMinAmount,
	},
}

// availableRules compare the value with what is left of each period limit.
var availableRules = []limitRule{
	{
		period:     PeriodDaily,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.DailyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserDailyLimit },
		used:       func(u models.UsedLimit) decimal.Decimal { return u.DailyLimit },
		violated:   exhausts,
		kind:       ErrInsufficientAvailableLimit,
	},
	{
		period:     PeriodMonthly,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.MonthlyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserMonthlyLimit },
		used:       func(u models.UsedLimit) decimal.Decimal { return u.MonthlyLimit },
		violated:   exhausts,
		kind:       ErrInsufficientAvailableLimit,
	},
	{
		period:     PeriodYearly,
		compliance: func(l *models.UserLimit) decimal.NullDecimal { return l.YearlyLimit },
		user:       func(l *models.UserLimit) decimal.NullDecimal { return l.UserYearlyLimit },
		used:       func(u models.UsedLimit) decimal.Decimal { return u.YearlyLimit },
		violated:   exhausts,
		kind:       ErrInsufficientAvailableLimit,
	},
	{
		period:      PeriodNightly,
		nightlyOnly: true,
		compliance:  func(l *models.UserLimit) decimal.NullDecimal { return l.NightlyLimit },
		user:        func(l *models.UserLimit) decimal.NullDecimal { return l.UserNightlyLimit },
		used:        func(u models.UsedLimit) decimal.Decimal { return u.NightlyLimit },
		violated:    exhausts,
		kind:        ErrInsufficientAvailableLimit,
	},
}

// evaluate returns a LimitError for the first rule value violates, compliance tier first.
func evaluate(rules []limitRule, ul *models.UserLimit, used models.UsedLimit, value decimal.Decimal, inNight bool) error {
	for _, r := range rules {
		if r.nightlyOnly && !inNight {
			continue
		}
		u := decimal.Zero
		if r.used != nil {
			u = r.used(used)
		}
		tiers := []struct {
			name  string
			field limitField
		}{
			{TierCompliance, r.compliance},
			{TierUser, r.user},
		}
		for _, tier := range tiers {
			limit := tier.field(ul)
			if !limit.Valid {
				continue
			}
			if r.violated(limit.Decimal, u, value) {
				return &LimitError{
					Kind:      r.kind,
					Period:    r.period,
					Tier:      tier.name,
					Limit:     limit.Decimal,
					Used:      u,
					Value:     value,
					UserLimit: ul,
				}
			}
		}
	}
	return nil
}
