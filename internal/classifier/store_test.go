package classifier

import (
	"testing"

	"gestfin/pgc-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultStoreHasEveryCategory(t *testing.T) {
	store := NewDefaultStore()

	for _, docType := range models.AllDocumentTypes() {
		stats := store.Categories[docType]
		require.NotNil(t, stats, "missing category %s", docType)
		assert.NotNil(t, stats.Terms)
		assert.Equal(t, 0, stats.Docs)
	}
	assert.Equal(t, 0, store.TotalDocs)
}

func TestNormalizeRepairsPartialStore(t *testing.T) {
	store := &ClassifierStore{
		Categories: map[models.DocumentType]*CategoryStats{
			models.DocumentIncoming: {Docs: 2},
		},
		TotalDocs: 2,
	}

	store.normalize()

	for _, docType := range models.AllDocumentTypes() {
		stats := store.Categories[docType]
		require.NotNil(t, stats, "missing category %s", docType)
		assert.NotNil(t, stats.Terms)
	}
	assert.Equal(t, 2, store.Categories[models.DocumentIncoming].Docs)
}

func TestNormalizeRepairsNilCategories(t *testing.T) {
	store := &ClassifierStore{}

	store.normalize()

	assert.Len(t, store.Categories, len(models.AllDocumentTypes()))
}

func TestCloneIsDeep(t *testing.T) {
	store := NewDefaultStore()
	store.Categories[models.DocumentIncoming].Terms["fatura"] = 1
	store.Categories[models.DocumentIncoming].Docs = 1
	store.TotalDocs = 1

	clone := store.Clone()
	clone.Categories[models.DocumentIncoming].Terms["fatura"] = 99
	clone.Categories[models.DocumentIncoming].Docs = 99
	clone.TotalDocs = 99

	assert.Equal(t, 1, store.Categories[models.DocumentIncoming].Terms["fatura"])
	assert.Equal(t, 1, store.Categories[models.DocumentIncoming].Docs)
	assert.Equal(t, 1, store.TotalDocs)
}

func TestVocabularySizeCountsDistinctTermsAcrossCategories(t *testing.T) {
	store := NewDefaultStore()
	store.Categories[models.DocumentIncoming].Terms["fatura"] = 2
	store.Categories[models.DocumentIncoming].Terms["venda"] = 1
	store.Categories[models.DocumentOutgoing].Terms["fatura"] = 1
	store.Categories[models.DocumentOutgoing].Terms["despesa"] = 1

	assert.Equal(t, 3, store.vocabularySize())
}
