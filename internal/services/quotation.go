package services

import (
	"context"
	"slices"

	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// QuotationSource returns the live quotations one source knows for a currency pair.
type QuotationSource interface {
	GetByBaseCurrencyAndQuoteCurrency(ctx context.Context, baseCurrency, quoteCurrency string) ([]models.StreamQuotation, error)
}

// QuotationCache keeps the last best quotation per currency pair.
type QuotationCache interface {
	Get(ctx context.Context, baseCurrency, quoteCurrency string) (*models.StreamQuotation, error)
	Set(ctx context.Context, q *models.StreamQuotation) error
}

// QuotationService picks the best live quotation across its sources.
type QuotationService struct {
	cache   QuotationCache
	sources []QuotationSource
}

// NewQuotationService creates a QuotationService. cache may be nil.
func NewQuotationService(cache QuotationCache, sources ...QuotationSource) *QuotationService {
	return &QuotationService{cache: cache, sources: sources}
}

// GetBest returns the highest-priority positive quotation of baseCurrency in quoteCurrency.
// A failing source is logged and skipped.
func (s *QuotationService) GetBest(ctx context.Context, baseCurrency, quoteCurrency string) (*models.StreamQuotation, error) {
	if s.cache != nil {
		q, err := s.cache.Get(ctx, baseCurrency, quoteCurrency)
		if err != nil {
			logger.Log.Warnw("quotation cache read failed", "base", baseCurrency, "quote", quoteCurrency, "error", err)
		} else if q != nil {
			return q, nil
		}
	}

	var candidates []models.StreamQuotation
	for _, src := range s.sources {
		quotations, err := src.GetByBaseCurrencyAndQuoteCurrency(ctx, baseCurrency, quoteCurrency)
		if err != nil {
			logger.Log.Warnw("quotation source failed", "base", baseCurrency, "quote", quoteCurrency, "error", err)
			continue
		}
		for _, q := range quotations {
			if q.Price.IsPositive() {
				candidates = append(candidates, q)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, ErrQuotationNotFound
	}

	slices.SortStableFunc(candidates, func(a, b models.StreamQuotation) int {
		return a.Priority - b.Priority
	})
	best := candidates[0]

	if s.cache != nil {
		if err := s.cache.Set(ctx, &best); err != nil {
			logger.Log.Error(err)
		}
	}
	return &best, nil
}
