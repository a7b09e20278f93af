package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionTypeReader reads transaction types by tag.
type TransactionTypeReader interface {
	GetByTag(ctx context.Context, tag string) (*models.TransactionType, error)
}

// CurrencyReader reads currencies by tag.
type CurrencyReader interface {
	GetByTag(ctx context.Context, tag string) (*models.Currency, error)
}

// WalletReader reads wallets.
type WalletReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
}

// WalletAccountRepository reads wallet accounts and writes their balances.
type WalletAccountRepository interface {
	GetByWalletAndCurrency(ctx context.Context, walletID, currencyID uuid.UUID) (*models.WalletAccount, error)
	Update(ctx context.Context, a *models.WalletAccount) error
}

// WalletAccountCacheWriter refreshes the cached snapshot of a wallet account.
type WalletAccountCacheWriter interface {
	Save(ctx context.Context, c *models.WalletAccountCache) error
}

// OperationUpdater writes back changed operations.
type OperationUpdater interface {
	Update(ctx context.Context, op *models.Operation) error
}

// OperationEventEmitter announces created operations.
type OperationEventEmitter interface {
	PendingOperation(ctx context.Context, owner, beneficiary *models.Operation)
}

// UserLimitEventEmitter announces user limits created from compliance defaults.
type UserLimitEventEmitter interface {
	CreatedUserLimit(ctx context.Context, l *models.UserLimit)
}

// UserLimitChecker resolves user limits and checks values against them.
type UserLimitChecker interface {
	ResolveForTransactionType(
		ctx context.Context,
		userID uuid.UUID,
		tt *models.TransactionType,
	) (ul *models.UserLimit, created bool, err error)
	CheckUserLimits(
		ctx context.Context,
		userID uuid.UUID,
		account *models.WalletAccount,
		tt *models.TransactionType,
		side models.Participants,
		value decimal.Decimal,
	) (*LimitCheck, error)
}

// CreditChecker decides whether a credit allowance covers a user's liability.
type CreditChecker interface {
	Covers(ctx context.Context, userID uuid.UUID, creditBalance decimal.Decimal) (bool, decimal.Decimal, error)
}

// PendingStager stages and expires in-flight balance deltas.
type PendingStager interface {
	Stage(ctx context.Context, operationID, walletAccountID uuid.UUID, value decimal.Decimal) (*models.PendingWalletAccountTransaction, error)
	Expire(ctx context.Context, staged []*models.PendingWalletAccountTransaction) error
	ActiveDelta(ctx context.Context, walletAccountID, excludeOperationID uuid.UUID) (decimal.Decimal, error)
}

// OperationBuilder assembles and persists operations.
type OperationBuilder interface {
	Build(ctx context.Context, tt *models.TransactionType, owner, beneficiary *OperationSide) (*models.Operation, error)
}

// AfterCommitFunc defers fn until the caller's transaction commits.
type AfterCommitFunc func(ctx context.Context, fn func(context.Context))

// creationStrategy is the shape of the operations a request produces.
type creationStrategy int

const (
	strategyOwnerOnly creationStrategy = iota + 1
	strategyBeneficiaryOnly
	strategySharedSameCurrency
	strategyPairedCrossCurrency
)

func selectStrategy(owner, beneficiary *OperationSide) creationStrategy {
	switch {
	case beneficiary == nil:
		return strategyOwnerOnly
	case owner == nil:
		return strategyBeneficiaryOnly
	case owner.Account.CurrencyID == beneficiary.Account.CurrencyID:
		return strategySharedSameCurrency
	default:
		return strategyPairedCrossCurrency
	}
}

// creation is the state of one Create call.
type creation struct {
	transactionType *models.TransactionType
	owner           *OperationSide
	beneficiary     *OperationSide
	allowAvailable  bool
	staged          []*models.PendingWalletAccountTransaction
	createdLimits   []*models.UserLimit
}

// OperationService creates pending operations.
type OperationService struct {
	transactionTypes TransactionTypeReader
	currencies       CurrencyReader
	wallets          WalletReader
	accounts         WalletAccountRepository
	cache            WalletAccountCacheWriter
	operations       OperationUpdater
	limits           UserLimitChecker
	credit           CreditChecker
	pending          PendingStager
	factory          OperationBuilder
	events           OperationEventEmitter
	limitEvents      UserLimitEventEmitter
	afterCommit      AfterCommitFunc
	now              func() time.Time
}

// NewOperationService creates an OperationService. Cache writes and events of a
// created operation go through afterCommit; they run immediately when it is nil.
func NewOperationService(
	transactionTypes TransactionTypeReader,
	currencies CurrencyReader,
	wallets WalletReader,
	accounts WalletAccountRepository,
	cache WalletAccountCacheWriter,
	operations OperationUpdater,
	limits UserLimitChecker,
	credit CreditChecker,
	pending PendingStager,
	factory OperationBuilder,
	events OperationEventEmitter,
	limitEvents UserLimitEventEmitter,
	afterCommit AfterCommitFunc,
) *OperationService {
	if afterCommit == nil {
		afterCommit = func(ctx context.Context, fn func(context.Context)) { fn(ctx) }
	}
	return &OperationService{
		transactionTypes: transactionTypes,
		currencies:       currencies,
		wallets:          wallets,
		accounts:         accounts,
		cache:            cache,
		operations:       operations,
		limits:           limits,
		credit:           credit,
		pending:          pending,
		factory:          factory,
		events:           events,
		limitEvents:      limitEvents,
		afterCommit:      afterCommit,
		now:              time.Now,
	}
}

// Create validates a request, checks funds and limits, and persists the resulting
// PENDING operation(s). A same-currency request yields one shared operation returned as
// the owner operation; a cross-currency request yields two linked operations.
func (s *OperationService) Create(
	ctx context.Context,
	transactionTypeTag string,
	owner, beneficiary *models.OperationParticipant,
) (ownerOp, beneficiaryOp *models.Operation, err error) {
	if err := validateRequest(transactionTypeTag, owner, beneficiary); err != nil {
		return nil, nil, err
	}

	tt, err := s.resolveTransactionType(ctx, transactionTypeTag, owner != nil, beneficiary != nil)
	if err != nil {
		return nil, nil, err
	}

	c := &creation{transactionType: tt}
	defer func() {
		if len(c.staged) > 0 {
			_ = s.pending.Expire(context.WithoutCancel(ctx), c.staged)
		}
	}()

	if owner != nil {
		if c.owner, err = s.resolveSide(ctx, owner, "owner"); err != nil {
			return nil, nil, err
		}
		c.allowAvailable = owner.AllowAvailableRawValue
		if owner.RequestedRawValue.Valid || owner.RequestedFee.Valid {
			c.owner.RequestedRawValue = owner.RequestedRawValue
			c.owner.RequestedFee = owner.RequestedFee
		}
		if err := s.stage(ctx, c, c.owner, c.owner.Fee.Add(c.owner.RawValue).Neg()); err != nil {
			return nil, nil, err
		}
	}
	if beneficiary != nil {
		if c.beneficiary, err = s.resolveSide(ctx, beneficiary, "beneficiary"); err != nil {
			return nil, nil, err
		}
		if err := s.stage(ctx, c, c.beneficiary, c.beneficiary.RawValue); err != nil {
			return nil, nil, err
		}
	}

	if err := checkConsistency(c.owner, c.beneficiary); err != nil {
		return nil, nil, err
	}
	if c.owner != nil {
		if err := s.checkOwner(ctx, c); err != nil {
			return nil, nil, err
		}
	}
	if c.beneficiary != nil {
		side := c.beneficiary
		if err := s.checkLimits(ctx, c, side, models.ParticipantsBeneficiary, side.RawValue); err != nil {
			return nil, nil, err
		}
	}
	shareTracker(c.owner, c.beneficiary)

	switch selectStrategy(c.owner, c.beneficiary) {
	case strategyOwnerOnly:
		ownerOp, err = s.factory.Build(ctx, tt, c.owner, nil)
	case strategyBeneficiaryOnly:
		beneficiaryOp, err = s.factory.Build(ctx, tt, nil, c.beneficiary)
	case strategySharedSameCurrency:
		ownerOp, err = s.factory.Build(ctx, tt, c.owner, c.beneficiary)
	case strategyPairedCrossCurrency:
		ownerOp, beneficiaryOp, err = s.buildPaired(ctx, c)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.pending.Expire(ctx, c.staged); err != nil {
		logger.Log.Warnw("staged transactions left active", "error", err)
	}

	var snapshot *models.WalletAccountCache
	if ownerOp != nil {
		if snapshot, err = s.block(ctx, c.owner, ownerOp.Value); err != nil {
			return nil, nil, err
		}
	}

	created := c.createdLimits
	s.afterCommit(ctx, func(ctx context.Context) {
		if snapshot != nil {
			if err := s.cache.Save(ctx, snapshot); err != nil {
				logger.Log.Warnw("failed to refresh wallet account cache",
					"wallet_account_id", snapshot.WalletAccountID, "error", err)
			}
		}
		for _, l := range created {
			s.limitEvents.CreatedUserLimit(ctx, l)
		}
		s.events.PendingOperation(ctx, ownerOp, beneficiaryOp)
	})
	return ownerOp, beneficiaryOp, nil
}

func validateRequest(tag string, owner, beneficiary *models.OperationParticipant) error {
	if tag == "" {
		return fieldError(ErrMissingData, "transaction_type")
	}
	if owner == nil && beneficiary == nil {
		return fieldError(ErrMissingData, "owner")
	}
	if owner != nil {
		if err := validateParticipant(owner, "owner"); err != nil {
			return err
		}
	}
	if beneficiary != nil {
		if err := validateParticipant(beneficiary, "beneficiary"); err != nil {
			return err
		}
	}
	return nil
}

func validateParticipant(p *models.OperationParticipant, prefix string) error {
	switch {
	case p.OperationID == uuid.Nil:
		return fieldError(ErrMissingData, prefix+".operation_id")
	case p.WalletID == uuid.Nil:
		return fieldError(ErrMissingData, prefix+".wallet_id")
	case p.Currency == "":
		return fieldError(ErrMissingData, prefix+".currency")
	case p.Description == "":
		return fieldError(ErrMissingData, prefix+".description")
	case !p.RawValue.IsPositive():
		return fieldError(ErrInvalidFormat, prefix+".raw_value")
	case p.Fee.IsNegative():
		return fieldError(ErrInvalidFormat, prefix+".fee")
	}
	return nil
}

func (s *OperationService) resolveTransactionType(
	ctx context.Context,
	tag string,
	hasOwner, hasBeneficiary bool,
) (*models.TransactionType, error) {
	tt, err := s.transactionTypes.GetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return nil, ErrTransactionTypeNotFound
	}
	switch tt.State {
	case models.StateActive:
	case models.StateInactive:
		return nil, ErrTransactionTypeNotActive
	default:
		return nil, ErrUnsupportedTransactionTypeState
	}

	var ok bool
	switch tt.Participants {
	case models.ParticipantsOwner:
		ok = hasOwner
	case models.ParticipantsBeneficiary:
		ok = hasBeneficiary
	case models.ParticipantsBoth:
		ok = hasOwner && hasBeneficiary
	}
	if !ok {
		return nil, ErrParticipantsMismatch
	}
	return tt, nil
}

func (s *OperationService) resolveSide(
	ctx context.Context,
	p *models.OperationParticipant,
	prefix string,
) (*OperationSide, error) {
	currency, err := s.currencies.GetByTag(ctx, p.Currency)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, fieldError(ErrCurrencyNotFound, prefix+".currency")
	}
	if currency.State != models.StateActive {
		return nil, fieldError(ErrCurrencyNotActive, prefix+".currency")
	}

	wallet, err := s.wallets.GetByID(ctx, p.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fieldError(ErrWalletNotFound, prefix+".wallet_id")
	}
	if wallet.State != models.StateActive {
		return nil, fieldError(ErrWalletNotActive, prefix+".wallet_id")
	}

	account, err := s.accounts.GetByWalletAndCurrency(ctx, wallet.ID, currency.ID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fieldError(ErrWalletAccountNotFound, prefix+".wallet_id")
	}
	if account.State != models.StateActive {
		return nil, fieldError(ErrWalletAccountNotActive, prefix+".wallet_id")
	}

	return &OperationSide{
		OperationID: p.OperationID,
		Currency:    currency,
		Wallet:      wallet,
		Account:     account,
		RawValue:    p.RawValue,
		Fee:         p.Fee,
		Description: p.Description,
	}, nil
}

func (s *OperationService) stage(ctx context.Context, c *creation, side *OperationSide, value decimal.Decimal) error {
	p, err := s.pending.Stage(ctx, side.OperationID, side.Account.ID, value)
	if err != nil {
		return err
	}
	c.staged = append(c.staged, p)
	return nil
}

func checkConsistency(owner, beneficiary *OperationSide) error {
	if owner == nil || beneficiary == nil {
		return nil
	}
	if owner.Account.ID == beneficiary.Account.ID {
		return fieldError(ErrDataConsistency, "beneficiary.wallet_id")
	}
	if owner.Account.CurrencyID == beneficiary.Account.CurrencyID && !owner.RawValue.Equal(beneficiary.RawValue) {
		return fieldError(ErrDataConsistency, "beneficiary.raw_value")
	}
	return nil
}

// checkOwner verifies the owner can pay, clamping the request to the available balance
// when allowed, then checks the owner's limits.
func (s *OperationService) checkOwner(ctx context.Context, c *creation) error {
	side := c.owner
	userID := side.Wallet.UserID

	userLimit, created, err := s.limits.ResolveForTransactionType(ctx, userID, c.transactionType)
	if err != nil {
		return err
	}
	if created {
		c.createdLimits = append(c.createdLimits, userLimit)
	}

	covered := false
	if userLimit != nil && userLimit.CreditBalance.IsPositive() {
		var liability decimal.Decimal
		covered, liability, err = s.credit.Covers(ctx, userID, userLimit.CreditBalance)
		if err != nil {
			return err
		}
		logger.Log.Debugw("credit evaluated", "user_id", userID, "liability", liability, "covered", covered)
	}

	if !covered {
		delta, err := s.pending.ActiveDelta(ctx, side.Account.ID, side.OperationID)
		if err != nil {
			return err
		}
		available := side.Account.Balance.Add(delta)

		if c.allowAvailable && available.LessThan(side.Fee.Add(side.RawValue)) {
			clampToAvailable(side, available)
		}
		if value := side.Fee.Add(side.RawValue); available.LessThan(value) {
			return &FundsError{WalletAccountID: side.Account.ID, Available: available, Value: value}
		}
	}

	return s.checkLimits(ctx, c, side, models.ParticipantsOwner, side.Fee.Add(side.RawValue))
}

// checkLimits checks value against the limits of side's user and keeps the tracker to charge.
func (s *OperationService) checkLimits(
	ctx context.Context,
	c *creation,
	side *OperationSide,
	participant models.Participants,
	value decimal.Decimal,
) error {
	check, err := s.limits.CheckUserLimits(ctx, side.Wallet.UserID, side.Account, c.transactionType, participant, value)
	if err != nil || check == nil {
		return err
	}
	side.Tracker = check.Tracker
	if check.CreatedUserLimit != nil {
		c.createdLimits = append(c.createdLimits, check.CreatedUserLimit)
	}
	return nil
}

// shareTracker makes both sides charge one tracker when they consume the same user limit,
// as on a transfer between two wallets of one user.
func shareTracker(owner, beneficiary *OperationSide) {
	if owner == nil || beneficiary == nil || owner.Tracker == nil || beneficiary.Tracker == nil {
		return
	}
	if owner.Tracker.UserLimitID == beneficiary.Tracker.UserLimitID {
		beneficiary.Tracker = owner.Tracker
	}
}

// clampToAvailable shrinks the owner's raw value, then the fee, to fit available,
// recording what was originally asked for.
func clampToAvailable(side *OperationSide, available decimal.Decimal) {
	if !available.IsPositive() {
		return
	}
	if !side.RequestedRawValue.Valid {
		side.RequestedRawValue = decimal.NewNullDecimal(side.RawValue)
	}
	if !side.RequestedFee.Valid {
		side.RequestedFee = decimal.NewNullDecimal(side.Fee)
	}
	if available.LessThan(side.Fee) {
		side.Fee = available
		side.RawValue = decimal.Zero
		return
	}
	side.RawValue = available.Sub(side.Fee)
}

func (s *OperationService) buildPaired(ctx context.Context, c *creation) (*models.Operation, *models.Operation, error) {
	ownerOp, err := s.factory.Build(ctx, c.transactionType, c.owner, nil)
	if err != nil {
		return nil, nil, err
	}
	beneficiaryOp, err := s.factory.Build(ctx, c.transactionType, nil, c.beneficiary)
	if err != nil {
		return nil, nil, err
	}

	ownerOp.OperationRef = &beneficiaryOp.ID
	beneficiaryOp.OperationRef = &ownerOp.ID
	if err := s.operations.Update(ctx, ownerOp); err != nil {
		return nil, nil, err
	}
	if err := s.operations.Update(ctx, beneficiaryOp); err != nil {
		return nil, nil, err
	}
	return ownerOp, beneficiaryOp, nil
}

// block reserves value on the owner's account and returns its new cache snapshot.
func (s *OperationService) block(ctx context.Context, side *OperationSide, value decimal.Decimal) (*models.WalletAccountCache, error) {
	account := side.Account
	account.Block(value)
	if err := s.accounts.Update(ctx, account); err != nil {
		logger.Log.Errorw("failed to block balance", "wallet_account_id", account.ID, "error", err)
		return nil, err
	}

	return &models.WalletAccountCache{
		WalletAccountID: account.ID,
		WalletID:        side.Wallet.ID,
		UserID:          side.Wallet.UserID,
		CurrencyTag:     side.Currency.Tag,
		Balance:         account.Balance,
		UpdatedAt:       s.now(),
	}, nil
}
