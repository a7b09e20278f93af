package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rate  float32
	err   error
	calls int
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRateResponse{FromCurrency: req.FromCurrency, ToCurrency: req.ToCurrency, Rate: f.rate}, nil
}

func newTestFacade(client pb.ExchangeServiceClient) *QuotationGRPCFacade {
	f := NewQuotationGRPCFacade(client, 7, BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 2,
	})
	f.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

// --- Tests ---
func TestGetByBaseCurrencyAndQuoteCurrency(t *testing.T) {
	client := &fakeExchangeClient{rate: 5.25}
	facade := newTestFacade(client)

	quotes, err := facade.GetByBaseCurrencyAndQuoteCurrency(context.Background(), "USD", "BRL")
	require.NoError(t, err)
	require.Len(t, quotes, 1)

	q := quotes[0]
	assert.Equal(t, "USD", q.BaseCurrency)
	assert.Equal(t, "BRL", q.QuoteCurrency)
	assert.Equal(t, ExchangerSource, q.Source)
	assert.Equal(t, 7, q.Priority)
	assert.True(t, q.Price.Equal(decimal.RequireFromString("5.25")))
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), q.UpdatedAt)
}

func TestGetByBaseCurrencyAndQuoteCurrency_Error(t *testing.T) {
	client := &fakeExchangeClient{err: errors.New("grpc error")}
	facade := newTestFacade(client)

	quotes, err := facade.GetByBaseCurrencyAndQuoteCurrency(context.Background(), "USD", "BRL")
	assert.Error(t, err)
	assert.Nil(t, quotes)
}

func TestGetByBaseCurrencyAndQuoteCurrency_NonPositiveRate(t *testing.T) {
	client := &fakeExchangeClient{rate: 0}
	facade := newTestFacade(client)

	quotes, err := facade.GetByBaseCurrencyAndQuoteCurrency(context.Background(), "USD", "BRL")
	assert.ErrorIs(t, err, ErrNonPositiveRate)
	assert.Nil(t, quotes)
}

func TestGetByBaseCurrencyAndQuoteCurrency_BreakerOpens(t *testing.T) {
	client := &fakeExchangeClient{err: errors.New("grpc error")}
	facade := newTestFacade(client)

	for i := 0; i < 2; i++ {
		_, err := facade.GetByBaseCurrencyAndQuoteCurrency(context.Background(), "USD", "BRL")
		require.Error(t, err)
	}
	assert.Equal(t, 2, client.calls)

	_, err := facade.GetByBaseCurrencyAndQuoteCurrency(context.Background(), "USD", "BRL")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, client.calls, "open breaker must not reach the exchanger")
}
