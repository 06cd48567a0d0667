package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-converter/internal/display"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=conversion.go -destination=mock_conversion.go -package=services

// RateConverter converts an amount between two currencies at the current
// market rate.
type RateConverter interface {
	Convert(ctx context.Context, amount, fromCurrency, toCurrency string) (float64, error)
}

// ConversionWorkflow validates a conversion request and resolves it, either
// locally for identical currencies or through the RateConverter.
type ConversionWorkflow struct {
	converter RateConverter
}

// NewConversionWorkflow creates a new workflow instance
func NewConversionWorkflow(converter RateConverter) *ConversionWorkflow {
	return &ConversionWorkflow{converter: converter}
}

// Convert runs one conversion. It returns ErrInvalidAmount without any
// remote call when the amount is invalid, and ErrConversionFailure when the
// rate lookup fails for any reason.
func (w *ConversionWorkflow) Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResult, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return models.ConversionResult{}, err
	}

	if req.From == req.To {
		return newResult(amount.InexactFloat64(), amount, req), nil
	}

	converted, err := w.converter.Convert(ctx, amount.String(), req.From, req.To)
	if err != nil {
		logger.Log.Errorw("rate lookup failed",
			"amount", amount.String(), "from", req.From, "to", req.To, "error", err)
		return models.ConversionResult{}, fmt.Errorf("%w: %v", ErrConversionFailure, err)
	}

	return newResult(converted, amount, req), nil
}

func newResult(converted float64, amount decimal.Decimal, req models.ConversionRequest) models.ConversionResult {
	return models.ConversionResult{
		ConvertedAmount:    converted,
		EffectiveRate:      display.EffectiveRate(converted, amount),
		FormattedAmount:    display.FormatAmount(amount.InexactFloat64(), req.From),
		FormattedConverted: display.FormatAmount(converted, req.To),
	}
}
