package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
)

// QuotationRepository reads the quotations streamed into Postgres.
type QuotationRepository struct {
	db *sqlx.DB
}

func NewQuotationRepository(db *sqlx.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// GetByBaseCurrencyAndQuoteCurrency lists the stored quotations of a pair, best first.
func (r *QuotationRepository) GetByBaseCurrencyAndQuoteCurrency(ctx context.Context, baseCurrency, quoteCurrency string) ([]models.StreamQuotation, error) {
	const query = `
		SELECT base_currency, quote_currency, source, priority, price, updated_at
		FROM stream_quotations
		WHERE base_currency = $1 AND quote_currency = $2
		ORDER BY priority
	`

	var quotations []models.StreamQuotation
	err := r.db.SelectContext(ctx, &quotations, query, baseCurrency, quoteCurrency)
	logQuery(query, []any{baseCurrency, quoteCurrency}, err)
	if err != nil {
		return nil, err
	}
	return quotations, nil
}
