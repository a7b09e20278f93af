package facades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// ExchangerSource is the source name stamped on quotations read from the exchanger.
const ExchangerSource = "gw-exchanger"

// ErrNonPositiveRate is returned when the exchanger answers with a zero or negative rate.
var ErrNonPositiveRate = errors.New("exchanger returned non-positive rate")

// BreakerConfig tunes the circuit breaker guarding the exchanger.
type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// DefaultBreakerConfig trips after five consecutive failures and probes again after 30s.
var DefaultBreakerConfig = BreakerConfig{
	MaxRequests:         1,
	Interval:            time.Minute,
	Timeout:             30 * time.Second,
	ConsecutiveFailures: 5,
}

// QuotationGRPCFacade reads live quotations from the exchanger over gRPC.
type QuotationGRPCFacade struct {
	client   pb.ExchangeServiceClient
	cb       *gobreaker.CircuitBreaker
	priority int
	now      func() time.Time
}

// NewQuotationGRPCFacade creates a new facade with a gRPC client behind a circuit breaker.
func NewQuotationGRPCFacade(client pb.ExchangeServiceClient, priority int, cfg BreakerConfig) *QuotationGRPCFacade {
	settings := gobreaker.Settings{
		Name:        ExchangerSource,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &QuotationGRPCFacade{
		client:   client,
		cb:       gobreaker.NewCircuitBreaker(settings),
		priority: priority,
		now:      time.Now,
	}
}

// GetByBaseCurrencyAndQuoteCurrency asks the exchanger for the base/quote rate.
func (f *QuotationGRPCFacade) GetByBaseCurrencyAndQuoteCurrency(
	ctx context.Context,
	baseCurrency, quoteCurrency string,
) ([]models.StreamQuotation, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: baseCurrency,
		ToCurrency:   quoteCurrency,
	}

	result, err := f.cb.Execute(func() (interface{}, error) {
		resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.Rate <= 0 {
			return nil, ErrNonPositiveRate
		}
		return resp.Rate, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logger.Log.Warnw("exchanger unavailable, circuit breaker rejected request",
				"base", baseCurrency, "quote", quoteCurrency, "error", err)
			return nil, fmt.Errorf("exchanger unavailable: %w", err)
		}
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"base", baseCurrency, "quote", quoteCurrency, "error", err)
		return nil, err
	}

	return []models.StreamQuotation{{
		BaseCurrency:  baseCurrency,
		QuoteCurrency: quoteCurrency,
		Source:        ExchangerSource,
		Priority:      f.priority,
		Price:         decimal.NewFromFloat32(result.(float32)),
		UpdatedAt:     f.now(),
	}}, nil
}
