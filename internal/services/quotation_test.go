package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationService_GetBest(t *testing.T) {
	ctx := context.Background()

	quote := func(source string, priority int, price string) models.StreamQuotation {
		return models.StreamQuotation{
			BaseCurrency:  "USD",
			QuoteCurrency: "BRL",
			Source:        source,
			Priority:      priority,
			Price:         decimal.RequireFromString(price),
		}
	}

	tests := []struct {
		name       string
		setup      func(cache *MockQuotationCache, db, grpc *MockQuotationSource)
		wantSource string
		wantErr    error
	}{
		{
			name: "cache_hit",
			setup: func(cache *MockQuotationCache, db, grpc *MockQuotationSource) {
				q := quote("cache", 1, "5.1")
				cache.EXPECT().Get(ctx, "USD", "BRL").Return(&q, nil)
			},
			wantSource: "cache",
		},
		{
			name: "lowest_priority_wins",
			setup: func(cache *MockQuotationCache, db, grpc *MockQuotationSource) {
				cache.EXPECT().Get(ctx, "USD", "BRL").Return(nil, nil)
				db.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").
					Return([]models.StreamQuotation{quote("db", 2, "5.2"), quote("db-zero", 0, "0")}, nil)
				grpc.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").
					Return([]models.StreamQuotation{quote("grpc", 1, "5.3")}, nil)
				cache.EXPECT().Set(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, q *models.StreamQuotation) error {
					assert.Equal(t, "grpc", q.Source)
					return nil
				})
			},
			wantSource: "grpc",
		},
		{
			name: "failing_source_skipped",
			setup: func(cache *MockQuotationCache, db, grpc *MockQuotationSource) {
				cache.EXPECT().Get(ctx, "USD", "BRL").Return(nil, errors.New("redis down"))
				db.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").
					Return([]models.StreamQuotation{quote("db", 2, "5.2")}, nil)
				grpc.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").
					Return(nil, errors.New("unavailable"))
				cache.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))
			},
			wantSource: "db",
		},
		{
			name: "no_quotation",
			setup: func(cache *MockQuotationCache, db, grpc *MockQuotationSource) {
				cache.EXPECT().Get(ctx, "USD", "BRL").Return(nil, nil)
				db.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").Return(nil, nil)
				grpc.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "USD", "BRL").
					Return(nil, errors.New("unavailable"))
			},
			wantErr: ErrQuotationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := NewMockQuotationCache(ctrl)
			db := NewMockQuotationSource(ctrl)
			grpc := NewMockQuotationSource(ctrl)
			tt.setup(cache, db, grpc)

			svc := NewQuotationService(cache, db, grpc)
			got, err := svc.GetBest(ctx, "USD", "BRL")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestQuotationService_GetBest_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	src := NewMockQuotationSource(ctrl)
	src.EXPECT().GetByBaseCurrencyAndQuoteCurrency(ctx, "EUR", "BRL").
		Return([]models.StreamQuotation{{BaseCurrency: "EUR", QuoteCurrency: "BRL", Price: decimal.NewFromInt(6)}}, nil)

	got, err := NewQuotationService(nil, src).GetBest(ctx, "EUR", "BRL")
	require.NoError(t, err)
	assert.Equal(t, "6", got.Price.String())
}
