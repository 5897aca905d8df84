// Package config provides Viper-based hierarchical configuration management
// for the engine: defaults, then an optional config file, then PGC_-prefixed
// environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete engine configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		// Directory hosts the classifier store and other engine data.
		// Empty means the current working directory.
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Classifier struct {
		// StoreFile is the classifier store filename, resolved inside
		// Data.Directory unless absolute.
		StoreFile string `mapstructure:"store_file" yaml:"store_file"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Report struct {
		// Format is the report output format: "yaml" or "json".
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// StorePath resolves the classifier store location from the configured data
// directory and filename.
func (c *Config) StorePath() string {
	if filepath.IsAbs(c.Classifier.StoreFile) {
		return c.Classifier.StoreFile
	}
	return filepath.Join(c.Data.Directory, c.Classifier.StoreFile)
}

// LoadEnv loads a .env file from the working directory if present. Missing
// files are fine; explicit environment always wins.
func LoadEnv() {
	_ = godotenv.Load()
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pgc-engine")
	v.AddConfigPath(".pgc-engine")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PGC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not stop the engine;
			// defaults and env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")

	v.SetDefault("classifier.store_file", "classifier-store.yaml")

	v.SetDefault("report.format", "yaml")
}

// validateConfig checks the values that would otherwise fail far from here.
func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Log.Format)
	}

	switch config.Report.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown report format %q", config.Report.Format)
	}

	if config.Classifier.StoreFile == "" {
		return fmt.Errorf("classifier store file must not be empty")
	}

	return nil
}
