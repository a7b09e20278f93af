package services

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// OperationCreator persists new operations.
type OperationCreator interface {
	Create(ctx context.Context, op *models.Operation) error
}

// UserLimitTrackerWriter persists usage trackers.
type UserLimitTrackerWriter interface {
	CreateOrUpdate(ctx context.Context, t *models.UserLimitTracker) error
}

// OperationSide is one resolved and checked side of an operation request.
type OperationSide struct {
	OperationID       uuid.UUID
	Currency          *models.Currency
	Wallet            *models.Wallet
	Account           *models.WalletAccount
	RawValue          decimal.Decimal
	Fee               decimal.Decimal
	RequestedRawValue decimal.NullDecimal
	RequestedFee      decimal.NullDecimal
	Description       string
	Tracker           *models.UserLimitTracker
}

// OperationFactory assembles pending operations and charges their limit trackers.
type OperationFactory struct {
	operations OperationCreator
	trackers   UserLimitTrackerWriter
	now        func() time.Time
}

// NewOperationFactory creates an OperationFactory.
func NewOperationFactory(operations OperationCreator, trackers UserLimitTrackerWriter) *OperationFactory {
	return &OperationFactory{operations: operations, trackers: trackers, now: time.Now}
}

// Build creates and persists a PENDING operation of tt from owner, beneficiary or both.
// The fee is paid by the owner; on a beneficiary-only operation it is taken from the
// credited raw value.
func (f *OperationFactory) Build(
	ctx context.Context,
	tt *models.TransactionType,
	owner, beneficiary *OperationSide,
) (*models.Operation, error) {
	now := f.now()
	op := &models.Operation{
		State:             models.OperationStatePending,
		TransactionTypeID: tt.ID,
		AnalysisTags:      pq.StringArray{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var fee decimal.Decimal
	if owner != nil {
		op.ID = owner.OperationID
		op.CurrencyID = owner.Account.CurrencyID
		op.OwnerWalletID = &owner.Wallet.ID
		op.OwnerWalletAccountID = &owner.Account.ID
		op.RawValue = owner.RawValue
		op.Description = owner.Description
		op.OwnerRequestedRawValue = owner.RequestedRawValue
		op.OwnerRequestedFee = owner.RequestedFee
		fee = owner.Fee
	}
	if beneficiary != nil {
		op.BeneficiaryWalletID = &beneficiary.Wallet.ID
		op.BeneficiaryWalletAccountID = &beneficiary.Account.ID
		if owner == nil {
			op.ID = beneficiary.OperationID
			op.CurrencyID = beneficiary.Account.CurrencyID
			op.RawValue = beneficiary.RawValue
			op.Description = beneficiary.Description
			fee = beneficiary.Fee.Neg()
		}
	}
	op.Fee = fee.Abs()
	op.Value = op.Fee.Add(op.RawValue)

	if owner != nil && owner.Tracker != nil {
		if err := f.charge(ctx, op, owner.Tracker, now); err != nil {
			return nil, err
		}
		op.OwnerUserLimitTrackerID = &owner.Tracker.ID
	}
	if beneficiary != nil && beneficiary.Tracker != nil {
		if owner == nil || owner.Tracker != beneficiary.Tracker {
			if err := f.charge(ctx, op, beneficiary.Tracker, now); err != nil {
				return nil, err
			}
		}
		op.BeneficiaryUserLimitTrackerID = &beneficiary.Tracker.ID
	}

	if err := f.operations.Create(ctx, op); err != nil {
		logger.Log.Errorw("failed to create operation", "id", op.ID, "error", err)
		return nil, err
	}
	return op, nil
}

// charge adds the operation value to every tracker counter and tags the operation.
// The nightly counter is zeroed on read outside the window, so it is always charged.
func (f *OperationFactory) charge(ctx context.Context, op *models.Operation, t *models.UserLimitTracker, now time.Time) error {
	t.UsedDailyLimit = t.UsedDailyLimit.Add(op.Value)
	t.UsedMonthlyLimit = t.UsedMonthlyLimit.Add(op.Value)
	t.UsedAnnualLimit = t.UsedAnnualLimit.Add(op.Value)
	t.UsedNightlyLimit = t.UsedNightlyLimit.Add(op.Value)
	t.UpdatedAt = now

	if err := f.trackers.CreateOrUpdate(ctx, t); err != nil {
		logger.Log.Errorw("failed to save user limit tracker", "id", t.ID, "error", err)
		return err
	}

	tags := []string{models.TagDateLimitIncluded}
	if t.PeriodStart == models.PeriodStartInterval {
		tags = []string{
			models.TagDailyIntervalLimitIncluded,
			models.TagMonthlyIntervalLimitIncluded,
			models.TagYearlyIntervalLimitIncluded,
		}
	}
	for _, tag := range tags {
		if !slices.Contains(op.AnalysisTags, tag) {
			op.AnalysisTags = append(op.AnalysisTags, tag)
		}
	}
	return nil
}
