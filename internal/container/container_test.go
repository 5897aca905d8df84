package container

import (
	"path/filepath"
	"testing"

	"gestfin/pgc-engine/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	var cfg config.Config
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Data.Directory = t.TempDir()
	cfg.Classifier.StoreFile = "classifier-store.yaml"
	cfg.Report.Format = "yaml"
	return &cfg
}

func TestNewContainerWiresEverything(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.ClassifierStore())
	assert.NotNil(t, c.Classifier())
	assert.NotNil(t, c.Mapper())
	assert.NotNil(t, c.Evaluator())
	assert.Same(t, cfg, c.Config())
}

func TestNewContainerRejectsNilConfig(t *testing.T) {
	c, err := NewContainer(nil)

	require.Error(t, err)
	assert.Nil(t, c)
}

func TestContainerClassifierUsesConfiguredStore(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	// Learning must persist the store at the configured path.
	require.NoError(t, c.Classifier().Learn("fatura de venda", "incoming"))

	expected := filepath.Join(cfg.Data.Directory, "classifier-store.yaml")
	state, err := c.ClassifierStore().Load()
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalDocs, "store at %s should hold one document", expected)
}
