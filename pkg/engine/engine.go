// Package engine is the stable public facade of the document classification
// and chart-of-accounts mapping engine. The surrounding financial-management
// application embeds this package; the internal packages stay free to
// evolve behind it.
package engine

import (
	"gestfin/pgc-engine/internal/classifier"
	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/models"
	"gestfin/pgc-engine/internal/pgc"
	"gestfin/pgc-engine/internal/report"
)

// Re-exported result and input types so embedders do not import internals.
type (
	Classification = models.Classification
	DocumentType   = models.DocumentType
	LineItem       = models.LineItem
	ItemType       = models.ItemType
	MappingResult  = models.MappingResult
	Report         = report.Report
)

// Engine composes the classifier, the mapper and the evaluator behind the
// documented contracts. Classify and Learn share the persisted store;
// MapLineItem and Evaluate are stateless and safe for unlimited
// parallelism.
type Engine struct {
	classifier *classifier.Classifier
	mapper     *pgc.Mapper
	evaluator  *report.Evaluator
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	store  classifier.Store
	logger logging.Logger
}

// WithStorePath persists the classifier state as a YAML file at path.
func WithStorePath(path string) Option {
	return func(o *options) { o.store = classifier.NewFileStore(path) }
}

// WithMemoryStore keeps the classifier state in memory only. Useful for
// tests and for callers that persist the record themselves.
func WithMemoryStore() Option {
	return func(o *options) { o.store = classifier.NewMemoryStore() }
}

// WithLogger routes engine logs through the given logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates an Engine. Without options it uses the default store file in
// the working directory and the default logger.
func New(opts ...Option) *Engine {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = classifier.NewFileStore("")
	}
	if o.logger == nil {
		o.logger = logging.GetLogger()
	}

	return &Engine{
		classifier: classifier.New(o.store, o.logger),
		mapper:     pgc.NewMapper(o.logger),
		evaluator:  report.NewEvaluator(o.logger),
	}
}

// Classify returns the document type and confidence for extracted text.
// It always returns a result; store problems degrade confidence instead of
// failing.
func (e *Engine) Classify(text string) Classification {
	return e.classifier.Classify(text)
}

// Learn records a confirmed document type for the text and persists the
// updated classifier store. Only a failed persist is returned as an error.
func (e *Engine) Learn(text, label string) error {
	return e.classifier.Learn(text, label)
}

// MapLineItem maps one line item to a PGC-AO account.
func (e *Engine) MapLineItem(item LineItem) MappingResult {
	return e.mapper.MapLineItem(item)
}

// MapLineItems maps a batch in input order.
func (e *Engine) MapLineItems(items []LineItem) []MappingResult {
	results := make([]MappingResult, 0, len(items))
	for _, item := range items {
		results = append(results, e.mapper.MapLineItem(item))
	}
	return results
}

// Evaluate aggregates mapping results into the compliance report.
func (e *Engine) Evaluate(results []MappingResult) *Report {
	return e.evaluator.Evaluate(results)
}
