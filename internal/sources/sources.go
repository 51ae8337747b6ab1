// Package sources loads the master list of candidate documents from its
// YAML file. The list is static input: nothing in the pipeline writes it.
package sources

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nomadlib/curator/internal/types"
)

var validate = validator.New()

// List is the parsed source list grouped under a single document root so
// the YAML file stays self-describing.
type List struct {
	Sources []types.SourceEntry `yaml:"sources"`
}

// Load reads and validates the source list at path. Duplicate URLs are an
// authoring mistake in the list and are rejected up front rather than left
// for the hash-based deduplication to absorb.
func Load(path string) ([]types.SourceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source list %s: %w", path, err)
	}

	var list List
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse source list %s: %w", path, err)
	}
	if len(list.Sources) == 0 {
		return nil, fmt.Errorf("source list %s contains no entries", path)
	}

	seen := make(map[string]string, len(list.Sources))
	for i, entry := range list.Sources {
		if err := validate.Struct(&entry); err != nil {
			return nil, fmt.Errorf("invalid source entry %d (%q): %w", i, entry.Title, err)
		}
		if prev, ok := seen[entry.URL]; ok {
			return nil, fmt.Errorf("duplicate URL in source list: %q and %q both point at %s", prev, entry.Title, entry.URL)
		}
		seen[entry.URL] = entry.Title
	}
	return list.Sources, nil
}
