package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=widget.go -destination=mock_widget.go -package=services

// Recorder counts finished widget operations.
type Recorder interface {
	CatalogLoaded(outcome string)
	ConversionFinished(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) CatalogLoaded(string)      {}
func (nopRecorder) ConversionFinished(string) {}

// Widget is the state of one converter screen: the currency catalog, the
// selected pair, the last conversion and the single active error message.
//
// Remote calls run without holding the lock. Every conversion takes a
// sequence number when it starts and its outcome is applied only if no
// other conversion, swap or selection change started since.
type Widget struct {
	loader   *CatalogLoader
	workflow *ConversionWorkflow
	recorder Recorder
	once     sync.Once

	mu         sync.Mutex
	catalog    models.CatalogState
	from       string
	to         string
	amount     string
	conversion models.ConversionState
	errMsg     string
	seq        uint64
}

// NewWidget creates a widget with the given default currency pair.
// recorder may be nil.
func NewWidget(
	lister CurrencyLister,
	converter RateConverter,
	defaultFrom, defaultTo string,
	recorder Recorder,
) *Widget {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Widget{
		loader:     NewCatalogLoader(lister),
		workflow:   NewConversionWorkflow(converter),
		recorder:   recorder,
		catalog:    models.CatalogState{Status: models.StatusIdle, Currencies: models.Catalog{}},
		from:       defaultFrom,
		to:         defaultTo,
		conversion: models.ConversionState{Status: models.StatusIdle},
	}
}

// LoadCatalog fetches the currency catalog. Only the first call does any
// work; later calls return immediately. A failure leaves the catalog empty
// and sets the error message.
func (w *Widget) LoadCatalog(ctx context.Context) {
	w.once.Do(func() {
		w.mu.Lock()
		w.catalog.Status = models.StatusLoading
		w.errMsg = ""
		w.mu.Unlock()

		catalog, err := w.loader.Load(ctx)

		w.mu.Lock()
		defer w.mu.Unlock()
		if err != nil {
			w.catalog = models.CatalogState{Status: models.StatusFailure, Currencies: models.Catalog{}}
			w.errMsg = UserMessage(err)
			w.recorder.CatalogLoaded(metrics.OutcomeFailure)
			return
		}
		w.catalog = models.CatalogState{Status: models.StatusSuccess, Currencies: catalog}
		w.recorder.CatalogLoaded(metrics.OutcomeSuccess)
	})
}

// Select sets the currency pair. Once the catalog is loaded both codes must
// be present in it. Changing the pair clears the last result.
func (w *Widget) Select(fromCurrency, toCurrency string) (models.WidgetState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectLocked(fromCurrency, toCurrency)
}

// ChangeSelection is Select where an empty code keeps the currently selected
// one. The merge and the selection happen under one lock, so a concurrent
// swap cannot be undone by a stale read.
func (w *Widget) ChangeSelection(fromCurrency, toCurrency string) (models.WidgetState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if fromCurrency == "" {
		fromCurrency = w.from
	}
	if toCurrency == "" {
		toCurrency = w.to
	}
	return w.selectLocked(fromCurrency, toCurrency)
}

func (w *Widget) selectLocked(fromCurrency, toCurrency string) (models.WidgetState, error) {
	for _, code := range []string{fromCurrency, toCurrency} {
		if code == "" {
			return w.stateLocked(), fmt.Errorf("%w: empty code", ErrUnknownCurrency)
		}
		if w.catalog.Status == models.StatusSuccess && !w.catalog.Currencies.Has(code) {
			return w.stateLocked(), fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
		}
	}

	if fromCurrency != w.from || toCurrency != w.to {
		w.from, w.to = fromCurrency, toCurrency
		w.clearResultLocked()
	}
	return w.stateLocked(), nil
}

// Swap exchanges the source and target currencies and clears the last
// result. It never fails.
func (w *Widget) Swap() models.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.from, w.to = w.to, w.from
	w.clearResultLocked()
	return w.stateLocked()
}

// Convert converts amountText with the selected pair and returns the
// resulting state. Failures end up in the state, never as an error.
func (w *Widget) Convert(ctx context.Context, amountText string) models.WidgetState {
	w.mu.Lock()
	w.amount = amountText
	w.seq++
	seq := w.seq
	req := models.ConversionRequest{Amount: amountText, From: w.from, To: w.to}

	if _, err := ParseAmount(amountText); err != nil {
		w.failLocked(err)
		w.recorder.ConversionFinished(metrics.OutcomeInvalid)
		state := w.stateLocked()
		w.mu.Unlock()
		logger.Log.Infow("conversion rejected", "amount", amountText, "error", err)
		return state
	}

	w.conversion = models.ConversionState{Status: models.StatusLoading}
	w.errMsg = ""
	w.mu.Unlock()

	result, err := w.workflow.Convert(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.seq {
		logger.Log.Infow("discarding stale conversion",
			"seq", seq, "latest", w.seq, "from", req.From, "to", req.To)
		w.recorder.ConversionFinished(metrics.OutcomeStale)
		return w.stateLocked()
	}

	if err != nil {
		w.failLocked(err)
		w.recorder.ConversionFinished(metrics.OutcomeFailure)
		return w.stateLocked()
	}

	w.conversion = models.ConversionState{Status: models.StatusSuccess, Result: &result}
	if req.From == req.To {
		w.recorder.ConversionFinished(metrics.OutcomeIdentity)
	} else {
		w.recorder.ConversionFinished(metrics.OutcomeSuccess)
	}
	logger.Log.Infow("conversion finished",
		"amount", req.Amount, "from", req.From, "to", req.To,
		"converted", result.ConvertedAmount, "rate", result.EffectiveRate)
	return w.stateLocked()
}

// Catalog returns the catalog load state.
func (w *Widget) Catalog() models.CatalogState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return models.CatalogState{Status: w.catalog.Status, Currencies: w.catalog.Currencies.Clone()}
}

// State returns a snapshot of the widget.
func (w *Widget) State() models.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Widget) failLocked(err error) {
	msg := UserMessage(err)
	w.conversion = models.ConversionState{Status: models.StatusFailure, Error: msg}
	w.errMsg = msg
}

// clearResultLocked drops the last result and any conversion still in
// flight; a failed conversion keeps its message.
func (w *Widget) clearResultLocked() {
	w.seq++
	if w.conversion.Status != models.StatusFailure {
		w.conversion = models.ConversionState{Status: models.StatusIdle}
	}
}

func (w *Widget) stateLocked() models.WidgetState {
	conversion := w.conversion
	if conversion.Result != nil {
		result := *conversion.Result
		conversion.Result = &result
	}
	return models.WidgetState{
		Catalog: models.CatalogState{
			Status:     w.catalog.Status,
			Currencies: w.catalog.Currencies.Clone(),
		},
		From:                 w.from,
		To:                   w.to,
		Amount:               w.amount,
		Conversion:           conversion,
		ConversionInProgress: conversion.InProgress(),
		Error:                w.errMsg,
	}
}
