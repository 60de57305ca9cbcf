package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/logging"
	"levelkeeper/internal/metrics"
	"levelkeeper/internal/services/progression"
	"levelkeeper/internal/store"
)

// Wire bundles the stores, services and observability plumbing for the CLI.
type Wire struct {
	Config      Config
	Logger      *zap.Logger
	Registry    *prometheus.Registry
	Document    *store.JSONFile
	Progression domain.ProgressionService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder, err := metrics.New(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	doc := store.NewJSONFile(cfg.DataFile)
	svc, err := progression.New(doc,
		progression.WithLogger(logger.Named("progression").With(zap.String("path", doc.Path()))),
		progression.WithMetrics(recorder),
	)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:      cfg,
		Logger:      logger,
		Registry:    registry,
		Document:    doc,
		Progression: svc,
	}, nil
}

// Close flushes buffered log entries.
func (w *Wire) Close() {
	_ = w.Logger.Sync()
}
