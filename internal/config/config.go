// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to defaults.
type Config struct {
	// Paths
	BaseDir      string `json:"base_dir,omitempty"`      // Library root holding category directories
	DownloadDir  string `json:"download_dir,omitempty"`  // Staging directory for fetched PDFs
	CatalogPath  string `json:"catalog_path,omitempty"`  // Path to catalog.json
	ManifestPath string `json:"manifest_path,omitempty"` // Path to download_manifest.json
	SourcesPath  string `json:"sources_path,omitempty"`  // Path to the YAML source list
	IndexPath    string `json:"index_path,omitempty"`    // Path to the SQLite search index

	// Fetch behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per-request timeout
	MaxRetries     int  `json:"max_retries,omitempty"`     // Retries per URL before recording a failure
	Concurrency    int  `json:"concurrency,omitempty"`     // Parallel downloads
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed progress information
}

// DefaultConfig returns the paths and limits used when no config file is
// given. Everything lives under the library root so the whole tree can be
// copied to offline storage as one unit.
func DefaultConfig() Config {
	return Config{
		BaseDir:        "pdfs",
		DownloadDir:    filepath.Join("pdfs", "_downloads"),
		CatalogPath:    filepath.Join("catalog", "catalog.json"),
		ManifestPath:   filepath.Join("catalog", "download_manifest.json"),
		SourcesPath:    filepath.Join("catalog", "sources.yaml"),
		IndexPath:      filepath.Join("catalog", "index.db"),
		TimeoutSeconds: 60,
		MaxRetries:     2,
		Concurrency:    4,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.SourcesPath != "" {
		if _, err := os.Stat(c.SourcesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: source list not found: %s", c.SourcesPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. CLI flags always win for booleans since an unset flag is
// indistinguishable from false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseDir == "" {
		result.BaseDir = defaults.BaseDir
	}
	if result.DownloadDir == "" {
		result.DownloadDir = defaults.DownloadDir
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.ManifestPath == "" {
		result.ManifestPath = defaults.ManifestPath
	}
	if result.SourcesPath == "" {
		result.SourcesPath = defaults.SourcesPath
	}
	if result.IndexPath == "" {
		result.IndexPath = defaults.IndexPath
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	return result
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
