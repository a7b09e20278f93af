package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNightWindow_StartOf(t *testing.T) {
	wrapping, err := parseNightWindow("22:00", "06:00")
	require.NoError(t, err)
	early, err := parseNightWindow("01:00", "05:00")
	require.NoError(t, err)

	tests := []struct {
		name      string
		window    nightWindow
		now       time.Time
		wantStart time.Time
		wantIn    bool
	}{
		{"wrapping_before_midnight", wrapping, at("2024-03-15T23:00:00Z"), at("2024-03-15T22:00:00Z"), true},
		{"wrapping_after_midnight", wrapping, at("2024-03-15T03:00:00Z"), at("2024-03-14T22:00:00Z"), true},
		{"wrapping_daytime", wrapping, at("2024-03-15T12:00:00Z"), time.Time{}, false},
		{"wrapping_end_is_exclusive", wrapping, at("2024-03-15T06:00:00Z"), time.Time{}, false},
		{"plain_inside", early, at("2024-03-15T02:30:00Z"), at("2024-03-15T01:00:00Z"), true},
		{"plain_outside", early, at("2024-03-15T05:30:00Z"), time.Time{}, false},
		{"disabled", nightWindow{}, at("2024-03-15T23:00:00Z"), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, in := tt.window.startOf(tt.now)
			assert.Equal(t, tt.wantIn, in)
			assert.True(t, tt.wantStart.Equal(start), "got %s", start)
		})
	}
}

func TestParseNightWindow(t *testing.T) {
	w, err := parseNightWindow("", "06:00")
	require.NoError(t, err)
	assert.False(t, w.enabled)

	w, err = parseNightWindow("10:00", "10:00")
	require.NoError(t, err)
	assert.False(t, w.enabled)

	_, err = parseNightWindow("25:99", "06:00")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestRestartTracker(t *testing.T) {
	night, err := parseNightWindow("22:00", "06:00")
	require.NoError(t, err)
	now := at("2024-03-15T12:00:00Z")

	full := func(updatedAt time.Time) *models.UserLimitTracker {
		return &models.UserLimitTracker{
			UsedDailyLimit:   decimal.NewFromInt(100),
			UsedMonthlyLimit: decimal.NewFromInt(200),
			UsedAnnualLimit:  decimal.NewFromInt(300),
			UsedNightlyLimit: decimal.NewFromInt(50),
			UpdatedAt:        updatedAt,
		}
	}

	tests := []struct {
		name                          string
		mode                          models.PeriodStart
		now                           time.Time
		updatedAt                     time.Time
		daily, monthly, annual, night int64
	}{
		{"date_same_day", models.PeriodStartDate, now, at("2024-03-15T08:00:00Z"), 100, 200, 300, 0},
		{"date_previous_day", models.PeriodStartDate, now, at("2024-03-14T08:00:00Z"), 0, 200, 300, 0},
		{"date_previous_month", models.PeriodStartDate, now, at("2024-02-28T08:00:00Z"), 0, 0, 300, 0},
		{"date_previous_year", models.PeriodStartDate, now, at("2023-12-31T08:00:00Z"), 0, 0, 0, 0},
		{"interval_never_rolls_calendar", models.PeriodStartInterval, now, at("2023-12-31T08:00:00Z"), 100, 200, 300, 0},
		{"nightly_kept_inside_same_night", models.PeriodStartDate, at("2024-03-15T23:30:00Z"), at("2024-03-15T22:10:00Z"), 100, 200, 300, 50},
		{"nightly_reset_from_previous_night", models.PeriodStartDate, at("2024-03-15T23:30:00Z"), at("2024-03-15T05:00:00Z"), 100, 200, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := full(tt.updatedAt)
			restartTracker(tracker, tt.mode, boundsAt(tt.mode, tt.now, night))

			assert.Equal(t, decimal.NewFromInt(tt.daily).String(), tracker.UsedDailyLimit.String())
			assert.Equal(t, decimal.NewFromInt(tt.monthly).String(), tracker.UsedMonthlyLimit.String())
			assert.Equal(t, decimal.NewFromInt(tt.annual).String(), tracker.UsedAnnualLimit.String())
			assert.Equal(t, decimal.NewFromInt(tt.night).String(), tracker.UsedNightlyLimit.String())
		})
	}
}

func TestPeriodBounds_Bucket(t *testing.T) {
	night, err := parseNightWindow("22:00", "06:00")
	require.NoError(t, err)
	now := at("2024-03-15T23:00:00Z")

	values := []models.OperationValue{
		{Value: decimal.NewFromInt(1), CreatedAt: at("2024-03-15T22:30:00Z")},
		{Value: decimal.NewFromInt(10), CreatedAt: at("2024-03-15T09:00:00Z")},
		{Value: decimal.NewFromInt(100), CreatedAt: at("2024-03-02T09:00:00Z")},
		{Value: decimal.NewFromInt(1000), CreatedAt: at("2024-01-20T09:00:00Z")},
	}

	t.Run("date", func(t *testing.T) {
		b := boundsAt(models.PeriodStartDate, now, night)
		used := b.bucket(values)
		assert.Equal(t, "1", used.NightlyLimit.String())
		assert.Equal(t, "11", used.DailyLimit.String())
		assert.Equal(t, "111", used.MonthlyLimit.String())
		assert.Equal(t, "1111", used.YearlyLimit.String())
	})

	t.Run("interval", func(t *testing.T) {
		b := boundsAt(models.PeriodStartInterval, now, night)
		used := b.bucket(values)
		assert.Equal(t, "11", used.DailyLimit.String())
		assert.Equal(t, "111", used.MonthlyLimit.String())
		assert.Equal(t, "1111", used.YearlyLimit.String())
	})

	t.Run("earliest_covers_night_across_new_year", func(t *testing.T) {
		b := boundsAt(models.PeriodStartDate, at("2024-01-01T01:00:00Z"), night)
		assert.True(t, b.earliest().Equal(at("2023-12-31T22:00:00Z")))
	})
}
