// ABOUTME: Loads initial configuration resources into the store from a directory of JSON files.
// ABOUTME: Files are laid out as <dir>/<CategoryKey>/<Name>.json; unknown categories and non-JSON files are skipped.
package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/classkit/classdeck/panel"
)

// Seed loads every <dir>/<CategoryKey>/<Name>.json file into the store.
// Existing resources are overwritten (their version bumps). Returns the
// number of resources loaded.
func Seed(store *Store, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read seed dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rt, ok := panel.ResourceTypeFromKey(entry.Name())
		if !ok {
			continue
		}

		categoryDir := filepath.Join(dir, entry.Name())
		files, err := os.ReadDir(categoryDir)
		if err != nil {
			return loaded, fmt.Errorf("read seed category %s: %w", entry.Name(), err)
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(categoryDir, f.Name()))
			if err != nil {
				return loaded, fmt.Errorf("read seed file %s: %w", f.Name(), err)
			}
			if !json.Valid(raw) {
				return loaded, fmt.Errorf("seed file %s is not valid JSON", f.Name())
			}

			name := strings.TrimSuffix(f.Name(), ".json")
			if _, err := store.Put(rt.Key(), name, raw); err != nil {
				return loaded, fmt.Errorf("seed %s/%s: %w", rt.Key(), name, err)
			}
			loaded++
		}
	}
	return loaded, nil
}
