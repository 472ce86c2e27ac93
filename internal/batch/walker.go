package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/treyhoover/svgs/internal/annotate"
)

// Mode selects how a root directory is traversed.
type Mode string

const (
	// ModeFlat visits matching files directly under the root.
	ModeFlat Mode = "flat"
	// ModeGrouped visits one level of category subdirectories.
	ModeGrouped Mode = "grouped"
)

// Walk discovers annotation input under root. Flat mode returns items with
// no category; grouped mode visits each subdirectory and tags its files with
// the subdirectory name, skipping subdirectories without qualifying files.
// Listing failures abort discovery before any item is processed.
func Walk(root string, mode Mode, extension string) ([]annotate.Item, error) {
	switch mode {
	case ModeFlat:
		return listItems(root, "", extension)
	case ModeGrouped:
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("list root directory %q: %w", root, err)
		}
		var items []annotate.Item
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			category := entry.Name()
			found, err := listItems(filepath.Join(root, category), category, extension)
			if err != nil {
				return nil, err
			}
			items = append(items, found...)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unknown traversal mode %q", mode)
	}
}

func listItems(dir, category, extension string) ([]annotate.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory %q: %w", dir, err)
	}
	var items []annotate.Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), extension) {
			continue
		}
		items = append(items, annotate.Item{
			Path:     filepath.Join(dir, entry.Name()),
			Category: category,
		})
	}
	return items, nil
}
