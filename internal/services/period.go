package services

import (
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// nightWindow is a daily clock range that may wrap past midnight.
type nightWindow struct {
	start   time.Duration
	end     time.Duration
	enabled bool
}

func parseNightWindow(start, end string) (nightWindow, error) {
	if start == "" || end == "" {
		return nightWindow{}, nil
	}
	s, err := parseClock(start)
	if err != nil {
		return nightWindow{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return nightWindow{}, err
	}
	if s == e {
		return nightWindow{}, nil
	}
	return nightWindow{start: s, end: e, enabled: true}, nil
}

func parseClock(v string) (time.Duration, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("%w: nighttime bound %q", ErrInvalidFormat, v)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// startOf returns the start of the window occurrence containing t.
func (w nightWindow) startOf(t time.Time) (time.Time, bool) {
	if !w.enabled {
		return time.Time{}, false
	}
	h, m, sec := t.Clock()
	offset := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	today := startOfDay(t)

	if w.start < w.end {
		if offset >= w.start && offset < w.end {
			return today.Add(w.start), true
		}
		return time.Time{}, false
	}
	if offset >= w.start {
		return today.Add(w.start), true
	}
	if offset < w.end {
		return today.AddDate(0, 0, -1).Add(w.start), true
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// periodBounds are the inclusive lower bounds of every limit period at one instant.
type periodBounds struct {
	day     time.Time
	month   time.Time
	year    time.Time
	night   time.Time
	inNight bool
}

func boundsAt(mode models.PeriodStart, now time.Time, w nightWindow) periodBounds {
	var b periodBounds
	if mode == models.PeriodStartInterval {
		b.day = now.Add(-24 * time.Hour)
		b.month = now.AddDate(0, 0, -30)
		b.year = now.AddDate(0, 0, -365)
	} else {
		b.day = startOfDay(now)
		b.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		b.year = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	b.night, b.inNight = w.startOf(now)
	return b
}

// earliest is the lowest bound any period needs history from.
func (b periodBounds) earliest() time.Time {
	if b.inNight && b.night.Before(b.year) {
		return b.night
	}
	return b.year
}

// bucket returns the usage of values split into the periods of b.
func (b periodBounds) bucket(values []models.OperationValue) models.UsedLimit {
	used := models.UsedLimit{
		NightlyLimit: decimal.Zero,
		DailyLimit:   decimal.Zero,
		MonthlyLimit: decimal.Zero,
		YearlyLimit:  decimal.Zero,
	}
	for _, v := range values {
		if !v.CreatedAt.Before(b.year) {
			used.YearlyLimit = used.YearlyLimit.Add(v.Value)
		}
		if !v.CreatedAt.Before(b.month) {
			used.MonthlyLimit = used.MonthlyLimit.Add(v.Value)
		}
		if !v.CreatedAt.Before(b.day) {
			used.DailyLimit = used.DailyLimit.Add(v.Value)
		}
		if b.inNight && !v.CreatedAt.Before(b.night) {
			used.NightlyLimit = used.NightlyLimit.Add(v.Value)
		}
	}
	return used
}

// restartTracker zeroes the counters whose period ended since the tracker was last written.
// Calendar counters only roll over in DATE mode.
func restartTracker(t *models.UserLimitTracker, mode models.PeriodStart, b periodBounds) {
	last := t.UpdatedAt
	if mode == models.PeriodStartDate {
		switch {
		case last.Before(b.year):
			t.UsedAnnualLimit = decimal.Zero
			t.UsedMonthlyLimit = decimal.Zero
			t.UsedDailyLimit = decimal.Zero
		case last.Before(b.month):
			t.UsedMonthlyLimit = decimal.Zero
			t.UsedDailyLimit = decimal.Zero
		case last.Before(b.day):
			t.UsedDailyLimit = decimal.Zero
		}
	}
	if !b.inNight || last.Before(b.night) {
		t.UsedNightlyLimit = decimal.Zero
	}
}
