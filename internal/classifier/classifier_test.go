package classifier

import (
	"errors"
	"testing"

	"gestfin/pgc-engine/internal/logging"
	"gestfin/pgc-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() (*Classifier, *MemoryStore, *logging.MockLogger) {
	store := NewMemoryStore()
	logger := logging.NewMockLogger()
	return New(store, logger), store, logger
}

func TestClassifyColdStoreWithoutKeywords(t *testing.T) {
	classifier, _, _ := newTestClassifier()

	// No learned documents and no keyword hits: every category scores the
	// same, so there is no signal at all.
	result := classifier.Classify("texto sem qualquer sinal")

	assert.Equal(t, models.DocumentUnknown, result.DocumentType)
	assert.Equal(t, 0, result.Confidence)
}

func TestClassifyColdStoreWithKeywords(t *testing.T) {
	classifier, _, _ := newTestClassifier()

	// Three incoming keywords on an empty store: the keyword bonus alone
	// decides, and the softmax puts incoming at 70%.
	result := classifier.Classify("fatura cliente venda")

	assert.Equal(t, models.DocumentIncoming, result.DocumentType)
	assert.Equal(t, 70, result.Confidence)
}

func TestClassifyEmptyText(t *testing.T) {
	classifier, _, _ := newTestClassifier()

	result := classifier.Classify("")

	assert.Equal(t, models.DocumentUnknown, result.DocumentType)
	assert.Equal(t, 0, result.Confidence)
}

func TestClassifyIsDeterministic(t *testing.T) {
	classifier, _, _ := newTestClassifier()

	first := classifier.Classify("fatura cliente venda")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify("fatura cliente venda"))
	}
}

func TestLearnThenClassify(t *testing.T) {
	classifier, _, _ := newTestClassifier()

	// "arrendamento" is not a keyword for any type; only the learned term
	// frequencies can pull the classification towards contract.
	require.NoError(t, classifier.Learn("contrato arrendamento clausula", "contract"))
	require.NoError(t, classifier.Learn("contrato arrendamento clausula", "contract"))

	result := classifier.Classify("arrendamento")

	assert.Equal(t, models.DocumentContract, result.DocumentType)
	assert.Greater(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
}

func TestLearnPersistsCounts(t *testing.T) {
	classifier, store, _ := newTestClassifier()

	require.NoError(t, classifier.Learn("fatura de venda ao cliente", "incoming"))

	state, err := store.Load()
	require.NoError(t, err)

	incoming := state.Categories[models.DocumentIncoming]
	assert.Equal(t, 1, incoming.Docs)
	assert.Equal(t, 1, state.TotalDocs)
	assert.Equal(t, 1, incoming.Terms["fatura"])
	assert.Equal(t, 1, incoming.Terms["venda"])
	assert.Equal(t, 1, incoming.Terms["cliente"])
	// Short function words never reach the store.
	assert.NotContains(t, incoming.Terms, "de")
}

func TestLearnUnrecognizedLabelFallsBackToUnknown(t *testing.T) {
	classifier, store, logger := newTestClassifier()

	require.NoError(t, classifier.Learn("texto qualquer", "nota-de-credito"))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, state.Categories[models.DocumentUnknown].Docs)
	assert.True(t, logger.HasEntry("WARN", "Unrecognized label, learning as unknown"))
}

func TestLearnPropagatesSaveFailure(t *testing.T) {
	classifier, store, _ := newTestClassifier()
	store.SaveError = errors.New("disk full")

	err := classifier.Learn("fatura", "incoming")

	require.Error(t, err)
	assert.ErrorContains(t, err, "learning")
	assert.ErrorContains(t, err, "disk full")
}

func TestClassifyRecoversFromUnreadableStore(t *testing.T) {
	classifier, store, logger := newTestClassifier()
	store.LoadError = errors.New("permission denied")

	// Classification must still produce a result, on an empty store.
	result := classifier.Classify("fatura cliente venda")

	assert.Equal(t, models.DocumentIncoming, result.DocumentType)
	assert.True(t, logger.HasEntry("WARN", "Classifier store unreadable, reinitializing empty store"))
}

func TestLearnAccumulatesAcrossCategories(t *testing.T) {
	classifier, store, _ := newTestClassifier()

	require.NoError(t, classifier.Learn("fatura venda", "incoming"))
	require.NoError(t, classifier.Learn("despesa fornecedor", "outgoing"))
	require.NoError(t, classifier.Learn("contrato acordo", "contract"))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, state.TotalDocs)
	assert.Equal(t, 1, state.Categories[models.DocumentIncoming].Docs)
	assert.Equal(t, 1, state.Categories[models.DocumentOutgoing].Docs)
	assert.Equal(t, 1, state.Categories[models.DocumentContract].Docs)
	assert.Equal(t, 0, state.Categories[models.DocumentUnknown].Docs)
}
