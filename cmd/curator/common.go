package main

import (
	"fmt"

	"github.com/nomadlib/curator/internal/config"
	"github.com/nomadlib/curator/internal/fetch"
	"github.com/nomadlib/curator/internal/pipeline"
	"github.com/nomadlib/curator/internal/schemas"
)

// loadConfig loads the optional config file and fills unset values with
// defaults. An empty path returns pure defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return loaded.MergeWithDefaults(config.DefaultConfig()), nil
}

// newFetchClient builds the HTTP client from config values.
func newFetchClient(cfg config.Config) *fetch.Client {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Timeout()
	opts.MaxRetries = cfg.MaxRetries
	return fetch.NewClient(opts)
}

// progressPrinter returns a callback that prints per-item progress lines
// when verbose is set.
func progressPrinter(verbose bool) pipeline.ProgressCallback {
	if !verbose {
		return nil
	}
	return func(e pipeline.ProgressEvent) {
		fmt.Printf("[%s] %s\n", e.Step, e.Message)
	}
}

// checkSchema validates jsonPath against the named schema file when the
// schema can be located. A missing schema file is not an error; the
// struct-level validation still runs on load.
func checkSchema(schemaName, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/" + schemaName)
	if schemaPath == "" {
		return nil
	}
	return schemas.ValidateJSON(schemaPath, jsonPath)
}
