package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// WalletAccountCacheRepository keeps per-user wallet account snapshots in a Redis hash.
type WalletAccountCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of a user's hash, none when zero
}

func NewWalletAccountCacheRepository(client *redis.Client, expiration time.Duration) *WalletAccountCacheRepository {
	return &WalletAccountCacheRepository{client: client, exp: expiration}
}

func walletAccountCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("wallet_account_cache:%s", userID)
}

// GetAllByUser returns every cached wallet account of userID.
func (r *WalletAccountCacheRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletAccountCache, error) {
	key := walletAccountCacheKey(userID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	logger.Log.Debugw("cache", "key", key, "entries", len(fields), "error", err)
	if err != nil {
		return nil, err
	}

	entries := make([]models.WalletAccountCache, 0, len(fields))
	for field, raw := range fields {
		var e models.WalletAccountCache
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode cache entry %s: %w", field, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save stores c under its user's hash.
func (r *WalletAccountCacheRepository) Save(ctx context.Context, c *models.WalletAccountCache) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}

	key := walletAccountCacheKey(c.UserID)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, c.WalletAccountID.String(), raw)
	if r.exp > 0 {
		pipe.Expire(ctx, key, r.exp)
	}
	_, err = pipe.Exec(ctx)
	logger.Log.Debugw("cache", "key", key, "field", c.WalletAccountID, "error", err)
	return err
}

// QuotationCacheRepository keeps the last best quotation per currency pair in Redis.
type QuotationCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewQuotationCacheRepository(client *redis.Client, expiration time.Duration) *QuotationCacheRepository {
	return &QuotationCacheRepository{client: client, exp: expiration}
}

func quotationKey(baseCurrency, quoteCurrency string) string {
	return fmt.Sprintf("quotation:%s:%s", baseCurrency, quoteCurrency)
}

// Get returns the cached quotation of a pair, or nil on a miss.
func (r *QuotationCacheRepository) Get(ctx context.Context, baseCurrency, quoteCurrency string) (*models.StreamQuotation, error) {
	key := quotationKey(baseCurrency, quoteCurrency)
	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("cache", "key", key, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var q models.StreamQuotation
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Set caches q with the repository expiration.
func (r *QuotationCacheRepository) Set(ctx context.Context, q *models.StreamQuotation) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	key := quotationKey(q.BaseCurrency, q.QuoteCurrency)
	err = r.client.Set(ctx, key, raw, r.exp).Err()
	logger.Log.Debugw("cache", "key", key, "price", q.Price, "error", err)
	return err
}
