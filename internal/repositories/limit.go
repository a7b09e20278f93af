package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

const limitValueColumns = `daily_limit, monthly_limit, yearly_limit, nightly_limit,
	max_amount, min_amount, nighttime_max_amount, nighttime_min_amount,
	nighttime_start, nighttime_end`

// GlobalLimitRepository reads compliance default limits.
type GlobalLimitRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGlobalLimitRepository(db *sqlx.DB, txGetter TxGetter) *GlobalLimitRepository {
	return &GlobalLimitRepository{db: db, txGetter: txGetter}
}

// GetByLimitType returns the global limit of limitTypeID, or nil.
func (r *GlobalLimitRepository) GetByLimitType(ctx context.Context, limitTypeID uuid.UUID) (*models.GlobalLimit, error) {
	query := `SELECT id, limit_type_id, ` + limitValueColumns + `, created_at, updated_at
		FROM global_limits WHERE limit_type_id = $1`

	var g models.GlobalLimit
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &g, query, limitTypeID)
	logQuery(query, []any{limitTypeID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UserLimitRepository reads and creates per-user limits.
type UserLimitRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserLimitRepository(db *sqlx.DB, txGetter TxGetter) *UserLimitRepository {
	return &UserLimitRepository{db: db, txGetter: txGetter}
}

const userLimitColumns = `id, user_id, limit_type_id, ` + limitValueColumns + `,
	user_daily_limit, user_monthly_limit, user_yearly_limit, user_nightly_limit,
	user_max_amount, user_min_amount, user_nighttime_max_amount, user_nighttime_min_amount,
	user_nighttime_start, user_nighttime_end, credit_balance, created_at, updated_at`

// GetByUserAndLimitType returns the limit of userID under limitTypeID, or nil.
func (r *UserLimitRepository) GetByUserAndLimitType(ctx context.Context, userID, limitTypeID uuid.UUID) (*models.UserLimit, error) {
	query := `SELECT ` + userLimitColumns + ` FROM user_limits WHERE user_id = $1 AND limit_type_id = $2`

	var l models.UserLimit
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &l, query, userID, limitTypeID)
	logQuery(query, []any{userID, limitTypeID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts l.
func (r *UserLimitRepository) Create(ctx context.Context, l *models.UserLimit) error {
	const query = `
		INSERT INTO user_limits (
			id, user_id, limit_type_id,
			daily_limit, monthly_limit, yearly_limit, nightly_limit,
			max_amount, min_amount, nighttime_max_amount, nighttime_min_amount,
			nighttime_start, nighttime_end,
			user_daily_limit, user_monthly_limit, user_yearly_limit, user_nightly_limit,
			user_max_amount, user_min_amount, user_nighttime_max_amount, user_nighttime_min_amount,
			user_nighttime_start, user_nighttime_end, credit_balance, created_at, updated_at
		) VALUES (
			:id, :user_id, :limit_type_id,
			:daily_limit, :monthly_limit, :yearly_limit, :nightly_limit,
			:max_amount, :min_amount, :nighttime_max_amount, :nighttime_min_amount,
			:nighttime_start, :nighttime_end,
			:user_daily_limit, :user_monthly_limit, :user_yearly_limit, :user_nightly_limit,
			:user_max_amount, :user_min_amount, :user_nighttime_max_amount, :user_nighttime_min_amount,
			:user_nighttime_start, :user_nighttime_end, :credit_balance, :created_at, :updated_at
		)
	`

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, l)
	logQuery(query, []any{l.ID, l.UserID, l.LimitTypeID}, err)
	return err
}

// UserLimitTrackerRepository persists usage trackers under optimistic versioning.
type UserLimitTrackerRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserLimitTrackerRepository(db *sqlx.DB, txGetter TxGetter) *UserLimitTrackerRepository {
	return &UserLimitTrackerRepository{db: db, txGetter: txGetter}
}

// GetByUserLimit returns the tracker of userLimitID, or nil.
func (r *UserLimitTrackerRepository) GetByUserLimit(ctx context.Context, userLimitID uuid.UUID) (*models.UserLimitTracker, error) {
	const query = `
		SELECT id, user_limit_id, used_daily_limit, used_monthly_limit, used_annual_limit, used_nightly_limit,
		       period_start, version, created_at, updated_at
		FROM user_limit_trackers
		WHERE user_limit_id = $1
	`

	var t models.UserLimitTracker
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &t, query, userLimitID)
	logQuery(query, []any{userLimitID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateOrUpdate inserts a tracker never persisted (Version 0) or updates it if it
// still has t.Version. Either way t.Version is bumped on success.
func (r *UserLimitTrackerRepository) CreateOrUpdate(ctx context.Context, t *models.UserLimitTracker) error {
	const insert = `
		INSERT INTO user_limit_trackers (
			id, user_limit_id, used_daily_limit, used_monthly_limit, used_annual_limit, used_nightly_limit,
			period_start, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
		ON CONFLICT (user_limit_id) DO NOTHING
	`
	const update = `
		UPDATE user_limit_trackers
		SET used_daily_limit = $1, used_monthly_limit = $2, used_annual_limit = $3, used_nightly_limit = $4,
		    period_start = $5, version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`

	query := update
	args := []any{t.UsedDailyLimit, t.UsedMonthlyLimit, t.UsedAnnualLimit, t.UsedNightlyLimit,
		t.PeriodStart, t.UpdatedAt, t.ID, t.Version}
	if t.Version == 0 {
		query = insert
		args = []any{t.ID, t.UserLimitID, t.UsedDailyLimit, t.UsedMonthlyLimit, t.UsedAnnualLimit,
			t.UsedNightlyLimit, t.PeriodStart, t.CreatedAt, t.UpdatedAt}
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	t.Version++
	return nil
}
