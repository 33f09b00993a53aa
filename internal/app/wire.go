package app

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"romancalc/internal/domain"
	"romancalc/internal/logger"
	"romancalc/internal/observability"
	calcsvc "romancalc/internal/services/calculator"
	"romancalc/internal/store"
)

// Wire bundles the store, metrics and services for a command or the server.
type Wire struct {
	Config     Config
	Log        *logger.Logger
	Store      domain.SessionStore
	Metrics    *observability.CalculatorMetrics
	Calculator *calcsvc.Service

	closers []func() error
}

// NewWire constructs the dependency graph from cfg. Metrics are registered
// on reg when it is non-nil.
func NewWire(cfg Config, reg prometheus.Registerer, log *logger.Logger) (*Wire, error) {
	if log == nil {
		log = logger.Discard()
	}
	w := &Wire{Config: cfg, Log: log}

	switch cfg.Store.Backend {
	case BackendFile, "":
		w.Store = store.NewSessionFileStore(cfg.Home)
	case BackendMemory:
		w.Store = store.NewMemoryStore()
	case BackendBadger:
		b, err := store.OpenBadger(store.BadgerConfig{
			Path:       cfg.Store.Path,
			SyncWrites: true,
			Logger:     log.WithComponent("badger").Logger,
		})
		if err != nil {
			return nil, err
		}
		w.Store = b
		w.closers = append(w.closers, b.Close)
	default:
		return nil, errors.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	w.Metrics = observability.NewCalculatorMetrics(reg)
	w.Calculator = calcsvc.New(w.Store, w.Metrics, log)
	return w, nil
}

// Close releases resources held by the store.
func (w *Wire) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	w.closers = nil
	return first
}
