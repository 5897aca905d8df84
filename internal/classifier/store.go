// Package classifier implements the statistical document-type classifier:
// a persisted per-category term-frequency store, a Naive-Bayes log-score
// blended with keyword heuristics, and incremental learning from confirmed
// labels.
package classifier

import (
	"gestfin/pgc-engine/internal/models"
)

// CategoryStats holds the learned evidence for one document type.
type CategoryStats struct {
	// Terms maps normalized tokens to their occurrence count.
	Terms map[string]int `yaml:"terms" json:"terms"`
	// Docs counts the confirmed documents learned for this type.
	Docs int `yaml:"docs" json:"docs"`
}

// ClassifierStore is the whole persisted state of the classifier. It is
// always read and written as a single record; learning replaces it
// atomically.
type ClassifierStore struct {
	Categories map[models.DocumentType]*CategoryStats `yaml:"categories" json:"categories"`
	TotalDocs  int                                    `yaml:"total_docs" json:"total_docs"`
}

// NewDefaultStore creates an all-zero store with every document type
// present. Cold-start invariant: categories exist even with zero documents.
func NewDefaultStore() *ClassifierStore {
	store := &ClassifierStore{
		Categories: make(map[models.DocumentType]*CategoryStats, len(models.AllDocumentTypes())),
	}
	for _, docType := range models.AllDocumentTypes() {
		store.Categories[docType] = &CategoryStats{Terms: make(map[string]int)}
	}
	return store
}

// normalize repairs a loaded store so every document type has a usable
// entry, regardless of what the persisted record contained.
func (s *ClassifierStore) normalize() {
	if s.Categories == nil {
		s.Categories = make(map[models.DocumentType]*CategoryStats, len(models.AllDocumentTypes()))
	}
	for _, docType := range models.AllDocumentTypes() {
		stats := s.Categories[docType]
		if stats == nil {
			stats = &CategoryStats{}
			s.Categories[docType] = stats
		}
		if stats.Terms == nil {
			stats.Terms = make(map[string]int)
		}
	}
}

// Clone returns a deep copy. Learning mutates a copy and persists it whole,
// so an in-flight Classify never observes a half-written store.
func (s *ClassifierStore) Clone() *ClassifierStore {
	clone := &ClassifierStore{
		Categories: make(map[models.DocumentType]*CategoryStats, len(s.Categories)),
		TotalDocs:  s.TotalDocs,
	}
	for docType, stats := range s.Categories {
		terms := make(map[string]int, len(stats.Terms))
		for term, count := range stats.Terms {
			terms[term] = count
		}
		clone.Categories[docType] = &CategoryStats{Terms: terms, Docs: stats.Docs}
	}
	return clone
}

// vocabularySize counts the distinct terms known across all categories.
func (s *ClassifierStore) vocabularySize() int {
	seen := make(map[string]struct{})
	for _, stats := range s.Categories {
		for term := range stats.Terms {
			seen[term] = struct{}{}
		}
	}
	return len(seen)
}

// Store is the persistence port for the classifier state. Implementations
// must provide whole-record semantics: Load returns a complete store and
// Save replaces it atomically.
type Store interface {
	Load() (*ClassifierStore, error)
	Save(store *ClassifierStore) error
}
