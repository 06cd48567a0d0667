package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=services

// CurrencyLister fetches the supported currencies from the exchange-rate API.
type CurrencyLister interface {
	GetCurrencies(ctx context.Context) (map[string]string, error)
}

// CatalogLoader loads the currency catalog.
type CatalogLoader struct {
	lister CurrencyLister
}

// NewCatalogLoader creates a new loader instance
func NewCatalogLoader(lister CurrencyLister) *CatalogLoader {
	return &CatalogLoader{lister: lister}
}

// Load fetches the currency list. Any failure is reported as
// ErrCatalogLoadFailure.
func (l *CatalogLoader) Load(ctx context.Context) (models.Catalog, error) {
	currencies, err := l.lister.GetCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("currency list load failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoadFailure, err)
	}

	catalog := models.Catalog(currencies).Clone()
	logger.Log.Infow("currency list loaded", "currencies", len(catalog))
	return catalog, nil
}
