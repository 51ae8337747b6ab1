package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nomadlib/curator/internal/types"
)

// OrganizeResult records the outcome of moving downloads into category
// directories.
type OrganizeResult struct {
	Moved   int
	Missing []string // filenames found in neither location
}

// Organize moves each item's file from the downloads directory into
// {baseDir}/{category}/ and records the new path on the item. Files already
// in place are left alone; files found in neither location are reported but
// do not abort the pass. Callers must recompute stats and re-save.
func Organize(cat *types.Catalog, downloadDir, baseDir string) (OrganizeResult, error) {
	var result OrganizeResult

	for i := range cat.Items {
		item := &cat.Items[i]
		src := filepath.Join(downloadDir, item.Filename)
		destDir := filepath.Join(baseDir, string(item.Category))
		dest := filepath.Join(destDir, item.Filename)

		if _, err := os.Stat(src); os.IsNotExist(err) {
			if _, err := os.Stat(dest); err == nil {
				item.Path = filepath.ToSlash(dest)
				continue
			}
			result.Missing = append(result.Missing, item.Filename)
			continue
		}

		if err := os.MkdirAll(destDir, 0755); err != nil {
			return result, fmt.Errorf("failed to create category directory %s: %w", destDir, err)
		}
		if err := moveFile(src, dest); err != nil {
			return result, fmt.Errorf("failed to move %s: %w", item.Filename, err)
		}

		item.Path = filepath.ToSlash(dest)
		result.Moved++
	}

	return result, nil
}

// moveFile renames, falling back to copy+remove for cross-device moves.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// ItemByID returns the item with the given id, or nil.
func ItemByID(cat *types.Catalog, id string) *types.CatalogItem {
	for i := range cat.Items {
		if cat.Items[i].ID == id {
			return &cat.Items[i]
		}
	}
	return nil
}
