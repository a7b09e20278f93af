package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// LimitTypeReader reads limit types.
type LimitTypeReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.LimitType, error)
}

// GlobalLimitReader reads the compliance defaults of a limit type.
type GlobalLimitReader interface {
	GetByLimitType(ctx context.Context, limitTypeID uuid.UUID) (*models.GlobalLimit, error)
}

// UserLimitRepository reads and creates per-user limits.
type UserLimitRepository interface {
	GetByUserAndLimitType(ctx context.Context, userID, limitTypeID uuid.UUID) (*models.UserLimit, error)
	Create(ctx context.Context, l *models.UserLimit) error
}

// UserLimitTrackerReader reads the usage tracker of a user limit.
type UserLimitTrackerReader interface {
	GetByUserLimit(ctx context.Context, userLimitID uuid.UUID) (*models.UserLimitTracker, error)
}

// TransactionTypeByLimitTypeReader lists the transaction types sharing a limit type.
type TransactionTypeByLimitTypeReader interface {
	GetByLimitType(ctx context.Context, limitTypeID uuid.UUID) ([]models.TransactionType, error)
}

// OperationHistoryReader projects past operations of a wallet account for usage recomputation.
type OperationHistoryReader interface {
	GetValueAndCreatedAtByOwnerWalletAccount(
		ctx context.Context,
		walletAccountID uuid.UUID,
		createdAfter, createdBefore time.Time,
		transactionTypeIDs []uuid.UUID,
		states []models.OperationState,
	) ([]models.OperationValue, error)
	GetValueAndCreatedAtByBeneficiaryWalletAccount(
		ctx context.Context,
		walletAccountID uuid.UUID,
		createdAfter, createdBefore time.Time,
		transactionTypeIDs []uuid.UUID,
		states []models.OperationState,
	) ([]models.OperationValue, error)
}

// LimitCheck is the outcome of a passed limit check.
type LimitCheck struct {
	// Tracker is the usage tracker the operation must be charged to.
	Tracker *models.UserLimitTracker
	// CreatedUserLimit is set when the check cloned the user limit from the compliance defaults.
	CreatedUserLimit *models.UserLimit
}

// LimitService resolves user limits and checks operation values against them.
type LimitService struct {
	limitTypes       LimitTypeReader
	globalLimits     GlobalLimitReader
	userLimits       UserLimitRepository
	trackers         UserLimitTrackerReader
	transactionTypes TransactionTypeByLimitTypeReader
	history          OperationHistoryReader
	loc              *time.Location
	now              func() time.Time
}

// NewLimitService creates a LimitService. Calendar periods and nighttime windows are
// evaluated in loc, UTC when nil.
func NewLimitService(
	limitTypes LimitTypeReader,
	globalLimits GlobalLimitReader,
	userLimits UserLimitRepository,
	trackers UserLimitTrackerReader,
	transactionTypes TransactionTypeByLimitTypeReader,
	history OperationHistoryReader,
	loc *time.Location,
) *LimitService {
	if loc == nil {
		loc = time.UTC
	}
	return &LimitService{
		limitTypes:       limitTypes,
		globalLimits:     globalLimits,
		userLimits:       userLimits,
		trackers:         trackers,
		transactionTypes: transactionTypes,
		history:          history,
		loc:              loc,
		now:              time.Now,
	}
}

// LimitType returns the limit type governing tt, or nil when tt is not limited.
func (s *LimitService) LimitType(ctx context.Context, tt *models.TransactionType) (*models.LimitType, error) {
	if tt.LimitTypeID == nil {
		return nil, nil
	}
	lt, err := s.limitTypes.GetByID(ctx, *tt.LimitTypeID)
	if err != nil {
		return nil, err
	}
	if lt == nil {
		return nil, ErrLimitTypeNotFound
	}
	return lt, nil
}

// ResolveForTransactionType returns the user's limit under tt's limit type, or nil
// when tt is not limited. created reports whether the limit was cloned by this call.
func (s *LimitService) ResolveForTransactionType(
	ctx context.Context,
	userID uuid.UUID,
	tt *models.TransactionType,
) (ul *models.UserLimit, created bool, err error) {
	lt, err := s.LimitType(ctx, tt)
	if err != nil || lt == nil {
		return nil, false, err
	}
	return s.ResolveUserLimit(ctx, userID, lt)
}

// ResolveUserLimit returns the user's limit of lt, cloning it from the global limit
// on first use. The clone is not announced; the caller emits it once its work commits.
func (s *LimitService) ResolveUserLimit(
	ctx context.Context,
	userID uuid.UUID,
	lt *models.LimitType,
) (ul *models.UserLimit, created bool, err error) {
	ul, err = s.userLimits.GetByUserAndLimitType(ctx, userID, lt.ID)
	if err != nil {
		return nil, false, err
	}
	if ul != nil {
		return ul, false, nil
	}

	global, err := s.globalLimits.GetByLimitType(ctx, lt.ID)
	if err != nil {
		return nil, false, err
	}
	if global == nil {
		return nil, false, ErrGlobalLimitNotFound
	}

	ul = models.NewUserLimit(userID, global, s.now())
	if err := s.userLimits.Create(ctx, ul); err != nil {
		return nil, false, err
	}
	logger.Log.Infow("user limit created", "user_id", userID, "limit_type", lt.Tag)
	return ul, true, nil
}

// CheckUserLimits validates value against the user's limits for the given side of an
// operation of type tt on account. It returns nil when tt is not limited or the limit
// is kept in another currency. The limit type's check sides only select which past
// operations count toward usage.
func (s *LimitService) CheckUserLimits(
	ctx context.Context,
	userID uuid.UUID,
	account *models.WalletAccount,
	tt *models.TransactionType,
	side models.Participants,
	value decimal.Decimal,
) (*LimitCheck, error) {
	lt, err := s.LimitType(ctx, tt)
	if err != nil || lt == nil {
		return nil, err
	}
	if lt.CurrencyID != account.CurrencyID {
		return nil, nil
	}

	ul, created, err := s.ResolveUserLimit(ctx, userID, lt)
	if err != nil {
		return nil, err
	}
	window, err := parseNightWindow(ul.NighttimeWindow())
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	bounds := boundsAt(lt.PeriodStart, now, window)

	tracker, err := s.trackers.GetByUserLimit(ctx, ul.ID)
	if err != nil {
		return nil, err
	}
	fresh := tracker == nil
	if fresh {
		tracker = models.NewUserLimitTracker(ul.ID, lt.PeriodStart, now)
	} else {
		tracker.PeriodStart = lt.PeriodStart
		restartTracker(tracker, lt.PeriodStart, bounds)
	}

	if err := evaluate(absoluteRules, ul, models.UsedLimit{}, value, bounds.inNight); err != nil {
		logger.Log.Infow("limit rejected operation", "user_id", userID, "limit_type", lt.Tag, "side", side, "error", err)
		return nil, err
	}

	used := tracker.Used()
	if fresh || lt.PeriodStart == models.PeriodStartInterval {
		used, err = s.recomputeUsed(ctx, account.ID, lt, bounds, now)
		if err != nil {
			return nil, err
		}
		if fresh {
			tracker.UsedNightlyLimit = used.NightlyLimit
			tracker.UsedDailyLimit = used.DailyLimit
			tracker.UsedMonthlyLimit = used.MonthlyLimit
			tracker.UsedAnnualLimit = used.YearlyLimit
		}
	}

	if err := evaluate(availableRules, ul, used, value, bounds.inNight); err != nil {
		logger.Log.Infow("limit rejected operation", "user_id", userID, "limit_type", lt.Tag, "side", side, "error", err)
		return nil, err
	}

	check := &LimitCheck{Tracker: tracker}
	if created {
		check.CreatedUserLimit = ul
	}
	return check, nil
}

func (s *LimitService) recomputeUsed(
	ctx context.Context,
	walletAccountID uuid.UUID,
	lt *models.LimitType,
	bounds periodBounds,
	now time.Time,
) (models.UsedLimit, error) {
	types, err := s.transactionTypes.GetByLimitType(ctx, lt.ID)
	if err != nil {
		return models.UsedLimit{}, err
	}
	ids := make([]uuid.UUID, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	if len(ids) == 0 {
		return bounds.bucket(nil), nil
	}

	var values []models.OperationValue
	if lt.Check.Includes(models.ParticipantsOwner) {
		v, err := s.history.GetValueAndCreatedAtByOwnerWalletAccount(
			ctx, walletAccountID, bounds.earliest(), now, ids, models.LimitCountedStates)
		if err != nil {
			return models.UsedLimit{}, err
		}
		values = append(values, v...)
	}
	if lt.Check.Includes(models.ParticipantsBeneficiary) {
		v, err := s.history.GetValueAndCreatedAtByBeneficiaryWalletAccount(
			ctx, walletAccountID, bounds.earliest(), now, ids, models.LimitCountedStates)
		if err != nil {
			return models.UsedLimit{}, err
		}
		values = append(values, v...)
	}
	return bounds.bucket(values), nil
}
