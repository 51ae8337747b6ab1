// Package catalog persists the library catalog and keeps its derived state
// consistent with the download manifest and the filesystem.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/nomadlib/curator/internal/slug"
	"github.com/nomadlib/curator/internal/types"
)

var validate = validator.New()

// ParseError reports a catalog or manifest file that failed to parse or
// validate. Structurally invalid state is fatal for a run: downstream
// statistics would be undefined, so no partial catalog is ever written.
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// RoundMB converts a byte count to megabytes rounded to two decimals.
func RoundMB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/(1024*1024)*100) / 100
}

// NewItem promotes an accepted artifact into a catalog item with its
// classification labels. The id is derived from the filename and is unique
// as long as filenames are.
func NewItem(a types.RetrievedArtifact, category types.Category, tier types.Tier, relevance types.Relevance, summary string) types.CatalogItem {
	return types.CatalogItem{
		ID:          slug.FromFilename(a.Filename),
		Title:       a.Title,
		Filename:    a.Filename,
		Category:    category,
		Tier:        tier,
		Relevance:   relevance,
		Summary:     summary,
		SizeBytes:   a.SizeBytes,
		SizeMB:      RoundMB(a.SizeBytes),
		SHA256:      a.SHA256,
		Source:      a.Source,
		OriginalURL: a.OriginalURL,
	}
}

// Load reads and validates a catalog file.
func Load(path string) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var cat types.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, &ParseError{Path: path, Message: "invalid catalog JSON", Cause: err}
	}
	for i := range cat.Items {
		if err := validate.Struct(&cat.Items[i]); err != nil {
			return nil, &ParseError{Path: path, Message: fmt.Sprintf("invalid catalog item %d", i), Cause: err}
		}
	}
	return &cat, nil
}

// Save writes the catalog atomically: a temp file in the target directory is
// renamed over the destination so a crash cannot leave a truncated catalog.
func Save(path string, cat *types.Catalog) error {
	return writeJSON(path, cat)
}

// LoadManifest reads and validates a download manifest.
func LoadManifest(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file %s: %w", path, err)
	}

	var m types.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Message: "invalid manifest JSON", Cause: err}
	}
	for i := range m.Items {
		if err := validate.Struct(&m.Items[i]); err != nil {
			return nil, &ParseError{Path: path, Message: fmt.Sprintf("invalid manifest item %d", i), Cause: err}
		}
	}
	return &m, nil
}

// SaveManifest writes a manifest atomically.
func SaveManifest(path string, m *types.Manifest) error {
	return writeJSON(path, m)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".curator-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
