package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestWalletAccountCacheRepository(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	repo := NewWalletAccountCacheRepository(client, time.Hour)

	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	brl := &models.WalletAccountCache{
		WalletAccountID: uuid.New(), WalletID: uuid.New(), UserID: userID,
		CurrencyTag: "BRL", Balance: decimal.RequireFromString("-12.5"), UpdatedAt: now,
	}
	usd := &models.WalletAccountCache{
		WalletAccountID: uuid.New(), WalletID: brl.WalletID, UserID: userID,
		CurrencyTag: "USD", Balance: decimal.NewFromInt(3), UpdatedAt: now,
	}

	entries, err := repo.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, repo.Save(ctx, brl))
	require.NoError(t, repo.Save(ctx, usd))

	brl.Balance = decimal.NewFromInt(-20)
	require.NoError(t, repo.Save(ctx, brl))

	entries, err = repo.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	byTag := map[string]models.WalletAccountCache{}
	for _, e := range entries {
		byTag[e.CurrencyTag] = e
	}
	assert.Equal(t, "-20", byTag["BRL"].Balance.String())
	assert.Equal(t, "3", byTag["USD"].Balance.String())
	assert.True(t, now.Equal(byTag["USD"].UpdatedAt))

	other, err := repo.GetAllByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	mr.FastForward(2 * time.Hour)
	entries, err = repo.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWalletAccountCacheRepository_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	userID := uuid.New()
	mr.HSet(walletAccountCacheKey(userID), uuid.NewString(), "not json")

	_, err := NewWalletAccountCacheRepository(client, 0).GetAllByUser(ctx, userID)
	assert.Error(t, err)
}

func TestQuotationCacheRepository(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	repo := NewQuotationCacheRepository(client, 30*time.Second)

	got, err := repo.Get(ctx, "USD", "BRL")
	require.NoError(t, err)
	assert.Nil(t, got)

	q := &models.StreamQuotation{
		BaseCurrency: "USD", QuoteCurrency: "BRL", Source: "grpc", Priority: 1,
		Price: decimal.RequireFromString("5.4321"),
	}
	require.NoError(t, repo.Set(ctx, q))

	got, err = repo.Get(ctx, "USD", "BRL")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "5.4321", got.Price.String())
	assert.Equal(t, "grpc", got.Source)

	mr.FastForward(time.Minute)
	got, err = repo.Get(ctx, "USD", "BRL")
	require.NoError(t, err)
	assert.Nil(t, got)

	mr.Close()
	_, err = repo.Get(ctx, "USD", "BRL")
	assert.Error(t, err)
}
