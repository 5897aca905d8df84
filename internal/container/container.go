// Package container provides dependency injection for the engine. It
// centralizes the creation and wiring of all components, making them
// explicit and testable.
package container

import (
	"fmt"

	"gestfin/pgc-engine/internal/classifier"
	"gestfin/pgc-engine/internal/config"
	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/pgc"
	"gestfin/pgc-engine/internal/report"
)

// Container holds the wired engine components. It is immutable after
// creation: fields are private and exposed through getters only.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      classifier.Store
	classifier *classifier.Classifier
	mapper     *pgc.Mapper
	evaluator  *report.Evaluator
}

// NewContainer creates and wires all engine components from configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	store := classifier.NewFileStore(cfg.StorePath())

	cls := classifier.New(store, logger)
	mapper := pgc.NewMapper(logger)
	evaluator := report.NewEvaluator(logger)

	logger.Debug("Container initialized",
		logging.Field{Key: "store_path", Value: cfg.StorePath()},
	)

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      store,
		classifier: cls,
		mapper:     mapper,
		evaluator:  evaluator,
	}, nil
}

// Logger returns the wired logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// ClassifierStore returns the persistence port of the classifier.
func (c *Container) ClassifierStore() classifier.Store { return c.store }

// Classifier returns the document-type classifier.
func (c *Container) Classifier() *classifier.Classifier { return c.classifier }

// Mapper returns the chart-of-accounts mapper.
func (c *Container) Mapper() *pgc.Mapper { return c.mapper }

// Evaluator returns the aggregation and compliance evaluator.
func (c *Container) Evaluator() *report.Evaluator { return c.evaluator }
