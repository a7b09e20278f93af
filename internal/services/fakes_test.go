package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

var errFakeVersion = errors.New("version mismatch")

type fakeTransactionTypes struct {
	byTag map[string]*models.TransactionType
}

func (f *fakeTransactionTypes) GetByTag(_ context.Context, tag string) (*models.TransactionType, error) {
	return f.byTag[tag], nil
}

func (f *fakeTransactionTypes) GetByLimitType(_ context.Context, limitTypeID uuid.UUID) ([]models.TransactionType, error) {
	var out []models.TransactionType
	for _, tt := range f.byTag {
		if tt.LimitTypeID != nil && *tt.LimitTypeID == limitTypeID {
			out = append(out, *tt)
		}
	}
	return out, nil
}

type fakeCurrencies struct {
	byTag map[string]*models.Currency
}

func (f *fakeCurrencies) GetByTag(_ context.Context, tag string) (*models.Currency, error) {
	return f.byTag[tag], nil
}

type fakeWallets struct {
	byID map[uuid.UUID]*models.Wallet
}

func (f *fakeWallets) GetByID(_ context.Context, id uuid.UUID) (*models.Wallet, error) {
	return f.byID[id], nil
}

type fakeAccounts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.WalletAccount
}

func (f *fakeAccounts) GetByWalletAndCurrency(_ context.Context, walletID, currencyID uuid.UUID) (*models.WalletAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.WalletID == walletID && a.CurrencyID == currencyID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id uuid.UUID) (*models.WalletAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) Update(_ context.Context, a *models.WalletAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := f.byID[a.ID]
	if stored == nil || stored.Version != a.Version {
		return errFakeVersion
	}
	a.Version++
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]models.WalletAccountCache
}

func (f *fakeCache) GetAllByUser(_ context.Context, userID uuid.UUID) ([]models.WalletAccountCache, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.WalletAccountCache
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCache) Save(_ context.Context, c *models.WalletAccountCache) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[c.WalletAccountID] = *c
	return nil
}

type fakeOperations struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Operation
}

func (f *fakeOperations) Create(_ context.Context, op *models.Operation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[op.ID]; ok {
		return errors.New("duplicate operation")
	}
	cp := *op
	f.byID[op.ID] = &cp
	return nil
}

func (f *fakeOperations) Update(_ context.Context, op *models.Operation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *op
	f.byID[op.ID] = &cp
	return nil
}

func (f *fakeOperations) history(
	accountOf func(*models.Operation) *uuid.UUID,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	typeIDs []uuid.UUID,
	states []models.OperationState,
) []models.OperationValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.OperationValue
	for _, op := range f.byID {
		id := accountOf(op)
		if id == nil || *id != walletAccountID {
			continue
		}
		if op.CreatedAt.Before(createdAfter) || !op.CreatedAt.Before(createdBefore) {
			continue
		}
		if !slices.Contains(typeIDs, op.TransactionTypeID) || !slices.Contains(states, op.State) {
			continue
		}
		out = append(out, models.OperationValue{Value: op.Value, CreatedAt: op.CreatedAt})
	}
	return out
}

func (f *fakeOperations) GetValueAndCreatedAtByOwnerWalletAccount(
	_ context.Context,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	typeIDs []uuid.UUID,
	states []models.OperationState,
) ([]models.OperationValue, error) {
	return f.history(func(op *models.Operation) *uuid.UUID { return op.OwnerWalletAccountID },
		walletAccountID, createdAfter, createdBefore, typeIDs, states), nil
}

func (f *fakeOperations) GetValueAndCreatedAtByBeneficiaryWalletAccount(
	_ context.Context,
	walletAccountID uuid.UUID,
	createdAfter, createdBefore time.Time,
	typeIDs []uuid.UUID,
	states []models.OperationState,
) ([]models.OperationValue, error) {
	return f.history(func(op *models.Operation) *uuid.UUID { return op.BeneficiaryWalletAccountID },
		walletAccountID, createdAfter, createdBefore, typeIDs, states), nil
}

type fakePendings struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*models.PendingWalletAccountTransaction
}

func (f *fakePendings) Create(_ context.Context, p *models.PendingWalletAccountTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePendings) Update(_ context.Context, p *models.PendingWalletAccountTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePendings) GetByWalletAccount(_ context.Context, walletAccountID uuid.UUID) ([]models.PendingWalletAccountTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PendingWalletAccountTransaction
	for _, p := range f.rows {
		if p.WalletAccountID == walletAccountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePendings) active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.rows {
		if p.TTL == nil {
			n++
		}
	}
	return n
}

type fakeLimitTypes struct {
	byID map[uuid.UUID]*models.LimitType
}

func (f *fakeLimitTypes) GetByID(_ context.Context, id uuid.UUID) (*models.LimitType, error) {
	return f.byID[id], nil
}

type fakeGlobalLimits struct {
	byLimitType map[uuid.UUID]*models.GlobalLimit
}

func (f *fakeGlobalLimits) GetByLimitType(_ context.Context, limitTypeID uuid.UUID) (*models.GlobalLimit, error) {
	return f.byLimitType[limitTypeID], nil
}

type fakeUserLimits struct {
	mu     sync.Mutex
	limits []*models.UserLimit
}

func (f *fakeUserLimits) GetByUserAndLimitType(_ context.Context, userID, limitTypeID uuid.UUID) (*models.UserLimit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.limits {
		if l.UserID == userID && l.LimitTypeID == limitTypeID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeUserLimits) Create(_ context.Context, l *models.UserLimit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, l)
	return nil
}

type fakeTrackers struct {
	mu          sync.Mutex
	byUserLimit map[uuid.UUID]*models.UserLimitTracker
}

func (f *fakeTrackers) GetByUserLimit(_ context.Context, userLimitID uuid.UUID) (*models.UserLimitTracker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byUserLimit[userLimitID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrackers) CreateOrUpdate(_ context.Context, t *models.UserLimitTracker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byUserLimit[t.UserLimitID]
	if ok && stored.Version != t.Version {
		return errFakeVersion
	}
	t.Version++
	cp := *t
	f.byUserLimit[t.UserLimitID] = &cp
	return nil
}

type fakeEvents struct {
	mu         sync.Mutex
	operations []models.OperationEvent
	userLimits []*models.UserLimit
}

func (f *fakeEvents) PendingOperation(_ context.Context, owner, beneficiary *models.Operation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operations = append(f.operations, models.OperationEvent{
		Type:                 models.EventPendingOperation,
		OwnerOperation:       owner,
		BeneficiaryOperation: beneficiary,
	})
}

func (f *fakeEvents) CreatedUserLimit(_ context.Context, l *models.UserLimit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userLimits = append(f.userLimits, l)
}

type fakeQuotes struct {
	quotes []models.StreamQuotation
}

func (f *fakeQuotes) GetByBaseCurrencyAndQuoteCurrency(_ context.Context, base, quote string) ([]models.StreamQuotation, error) {
	var out []models.StreamQuotation
	for _, q := range f.quotes {
		if q.BaseCurrency == base && q.QuoteCurrency == quote {
			out = append(out, q)
		}
	}
	return out, nil
}
