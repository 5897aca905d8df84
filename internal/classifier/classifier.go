package classifier

import (
	"fmt"
	"sync"

	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/models"
	"gestfin/pgc-engine/internal/textutils"
)

// Classifier classifies document text against the persisted term-frequency
// store and learns from confirmed labels. Classify is a pure read; Learn is
// a serialized read-modify-write of the whole store.
type Classifier struct {
	store  Store
	logger logging.Logger

	// learnMu enforces the single-writer discipline for Learn. Classify
	// takes no lock: the store port guarantees whole-record reads.
	learnMu sync.Mutex
}

// New creates a Classifier over the given store port.
func New(store Store, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{
		store:  store,
		logger: logger.WithField(logging.FieldComponent, "classifier"),
	}
}

// Classify returns the most likely document type for the text together with
// a confidence in [0,100]. It always returns a result: store failures
// degrade to an empty store and ambiguity degrades to low confidence.
func (c *Classifier) Classify(text string) models.Classification {
	store := c.loadOrDefault()

	tokens := textutils.Tokenize(text)
	keywordScores := textutils.ScoreByKeywords(text)

	result := pickCategory(combinedScores(store, tokens, keywordScores))

	c.logger.Debug("Classified document text",
		logging.Field{Key: logging.FieldDocumentType, Value: string(result.DocumentType)},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
		logging.Field{Key: "tokens", Value: len(tokens)},
	)
	return result
}

// Learn records a confirmed document type for the text: every token's count
// and the category and total document counters are incremented, and the
// whole store is persisted. Unrecognized labels fall back to unknown.
// Learning the same text twice reinforces the same terms; callers that need
// at-most-once semantics must de-duplicate.
func (c *Classifier) Learn(text, label string) error {
	docType := models.ParseDocumentType(label)
	if string(docType) != label {
		c.logger.Warn("Unrecognized label, learning as unknown",
			logging.Field{Key: "label", Value: label})
	}

	c.learnMu.Lock()
	defer c.learnMu.Unlock()

	store := c.loadOrDefault().Clone()
	stats := store.Categories[docType]
	for _, token := range textutils.Tokenize(text) {
		stats.Terms[token]++
	}
	stats.Docs++
	store.TotalDocs++

	if err := c.store.Save(store); err != nil {
		return fmt.Errorf("learning %q: %w", docType, err)
	}

	c.logger.Info("Learned confirmed document type",
		logging.Field{Key: logging.FieldDocumentType, Value: string(docType)},
		logging.Field{Key: "category_docs", Value: stats.Docs},
		logging.Field{Key: "total_docs", Value: store.TotalDocs},
	)
	return nil
}

// loadOrDefault reads the store, recovering from corruption by
// reinitializing. A classification request must never fail on store state.
func (c *Classifier) loadOrDefault() *ClassifierStore {
	store, err := c.store.Load()
	if err != nil {
		c.logger.WithError(err).Warn("Classifier store unreadable, reinitializing empty store")
	}
	if store == nil {
		store = NewDefaultStore()
	}
	store.normalize()
	return store
}
