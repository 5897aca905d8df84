package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "classifier-store.yaml", cfg.Classifier.StoreFile)
	assert.Equal(t, "yaml", cfg.Report.Format)
	assert.Equal(t, "", cfg.Data.Directory)
}

func TestInitializeConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("PGC_LOG_LEVEL", "debug")
	t.Setenv("PGC_REPORT_FORMAT", "json")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Report.Format)
}

func TestInitializeConfigRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("PGC_LOG_LEVEL", "loudest")

	_, err := InitializeConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestInitializeConfigRejectsInvalidReportFormat(t *testing.T) {
	t.Setenv("PGC_REPORT_FORMAT", "xml")

	_, err := InitializeConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report format")
}

func TestStorePath(t *testing.T) {
	testCases := []struct {
		name      string
		directory string
		storeFile string
		expected  string
	}{
		{
			name:      "Relative file in working directory",
			directory: "",
			storeFile: "classifier-store.yaml",
			expected:  "classifier-store.yaml",
		},
		{
			name:      "Relative file in data directory",
			directory: "data",
			storeFile: "classifier-store.yaml",
			expected:  filepath.Join("data", "classifier-store.yaml"),
		},
		{
			name:      "Absolute file ignores data directory",
			directory: "data",
			storeFile: "/var/lib/pgc/store.yaml",
			expected:  "/var/lib/pgc/store.yaml",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.Data.Directory = tc.directory
			cfg.Classifier.StoreFile = tc.storeFile

			assert.Equal(t, tc.expected, cfg.StorePath())
		})
	}
}
