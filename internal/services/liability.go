package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletAccountCacheReader lists the cached wallet account snapshots of a user.
type WalletAccountCacheReader interface {
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletAccountCache, error)
}

// WalletAccountByIDReader reads the authoritative wallet account.
type WalletAccountByIDReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.WalletAccount, error)
}

// BestQuotationReader prices one currency in another.
type BestQuotationReader interface {
	GetBest(ctx context.Context, baseCurrency, quoteCurrency string) (*models.StreamQuotation, error)
}

// PendingDeltaReader sums active staged deltas of a wallet account.
type PendingDeltaReader interface {
	ActiveDelta(ctx context.Context, walletAccountID, excludeOperationID uuid.UUID) (decimal.Decimal, error)
}

// LiabilityService decides whether a user's credit allowance covers their negative balances.
type LiabilityService struct {
	cache              WalletAccountCacheReader
	accounts           WalletAccountByIDReader
	quotations         BestQuotationReader
	pending            PendingDeltaReader
	settlementCurrency string
	cacheMaxAge        time.Duration
	now                func() time.Time
}

// NewLiabilityService creates a LiabilityService valuing liabilities in settlementCurrency.
// Cache entries older than cacheMaxAge are re-read from the wallet account store.
func NewLiabilityService(
	cache WalletAccountCacheReader,
	accounts WalletAccountByIDReader,
	quotations BestQuotationReader,
	pending PendingDeltaReader,
	settlementCurrency string,
	cacheMaxAge time.Duration,
) *LiabilityService {
	return &LiabilityService{
		cache:              cache,
		accounts:           accounts,
		quotations:         quotations,
		pending:            pending,
		settlementCurrency: settlementCurrency,
		cacheMaxAge:        cacheMaxAge,
		now:                time.Now,
	}
}

// Covers reports whether creditBalance covers the user's total liability,
// returning the liability it computed.
func (s *LiabilityService) Covers(
	ctx context.Context,
	userID uuid.UUID,
	creditBalance decimal.Decimal,
) (bool, decimal.Decimal, error) {
	liability, err := s.Liability(ctx, userID)
	if err != nil {
		return false, decimal.Zero, err
	}
	return liability.LessThanOrEqual(creditBalance), liability, nil
}

// Liability sums the negative balances of every wallet account of the user,
// staged deltas included, valued in the settlement currency.
func (s *LiabilityService) Liability(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	entries, err := s.cache.GetAllByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(entries) == 0 {
		return decimal.Zero, ErrWalletAccountCacheNotFound
	}

	liability := decimal.Zero
	for i := range entries {
		balance, err := s.balance(ctx, &entries[i])
		if err != nil {
			return decimal.Zero, err
		}
		if !balance.IsNegative() {
			continue
		}

		debt := balance.Abs()
		if entries[i].CurrencyTag != s.settlementCurrency {
			q, err := s.quotations.GetBest(ctx, entries[i].CurrencyTag, s.settlementCurrency)
			if err != nil {
				return decimal.Zero, err
			}
			debt = debt.Mul(q.Price)
		}
		liability = liability.Add(debt)
	}
	return liability, nil
}

func (s *LiabilityService) balance(ctx context.Context, entry *models.WalletAccountCache) (decimal.Decimal, error) {
	balance := entry.Balance
	if s.cacheMaxAge > 0 && s.now().Sub(entry.UpdatedAt) > s.cacheMaxAge {
		account, err := s.accounts.GetByID(ctx, entry.WalletAccountID)
		if err != nil {
			return decimal.Zero, err
		}
		if account != nil {
			balance = account.Balance
		} else {
			logger.Log.Warnw("stale cache entry without wallet account", "wallet_account_id", entry.WalletAccountID)
		}
	}

	delta, err := s.pending.ActiveDelta(ctx, entry.WalletAccountID, uuid.Nil)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Add(delta), nil
}
