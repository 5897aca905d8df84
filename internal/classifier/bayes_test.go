package classifier

import (
	"math"
	"testing"

	"gestfin/pgc-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBayesLogScoreColdStoreIsZero(t *testing.T) {
	store := NewDefaultStore()

	// With every count floored at one, a cold store scores exactly zero
	// for any token list instead of collapsing to -Inf.
	stats := store.Categories[models.DocumentIncoming]
	score := bayesLogScore(stats, []string{"fatura", "venda"}, store.TotalDocs, store.vocabularySize())

	assert.Equal(t, 0.0, score)
}

func TestBayesLogScorePrefersSeenTerms(t *testing.T) {
	store := NewDefaultStore()
	incoming := store.Categories[models.DocumentIncoming]
	incoming.Terms["fatura"] = 3
	incoming.Docs = 2
	store.TotalDocs = 2

	outgoing := store.Categories[models.DocumentOutgoing]

	vocabulary := store.vocabularySize()
	seen := bayesLogScore(incoming, []string{"fatura"}, store.TotalDocs, vocabulary)
	unseen := bayesLogScore(outgoing, []string{"fatura"}, store.TotalDocs, vocabulary)

	assert.Greater(t, seen, unseen)
}

func TestPickCategoryAllEqualYieldsUnknown(t *testing.T) {
	combined := map[models.DocumentType]float64{
		models.DocumentIncoming: -2.5,
		models.DocumentOutgoing: -2.5,
		models.DocumentContract: -2.5,
		models.DocumentUnknown:  -2.5,
	}

	result := pickCategory(combined)

	assert.Equal(t, models.DocumentUnknown, result.DocumentType)
	assert.Equal(t, 0, result.Confidence)
}

func TestPickCategorySelectsHighestScore(t *testing.T) {
	combined := map[models.DocumentType]float64{
		models.DocumentIncoming: math.Log(7),
		models.DocumentOutgoing: 0,
		models.DocumentContract: 0,
		models.DocumentUnknown:  0,
	}

	result := pickCategory(combined)

	assert.Equal(t, models.DocumentIncoming, result.DocumentType)
	// softmax: 7 / (7 + 3) = 0.7
	assert.Equal(t, 70, result.Confidence)
}

func TestPickCategoryConfidenceStaysInRange(t *testing.T) {
	combined := map[models.DocumentType]float64{
		models.DocumentIncoming: 500,
		models.DocumentOutgoing: -500,
		models.DocumentContract: -500,
		models.DocumentUnknown:  -500,
	}

	result := pickCategory(combined)

	assert.Equal(t, models.DocumentIncoming, result.DocumentType)
	assert.Equal(t, 100, result.Confidence)
}
