// Package store persists the canonical and derived mappings as JSON.
// Both files are replaced wholesale on save, staged through temp files
// in the target directory, so a crash leaves either the old or the new
// complete state on disk, never a mix.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Another0Noob/lookbook-index/internal/catalog"
)

// Shape is the record encoding of a collection's canonical file. Legacy
// collections store bare name strings; categorized collections store
// {name, category} objects. Shape is a per-collection property,
// detected on read and preserved on write.
type Shape int

const (
	ShapeSimple Shape = iota
	ShapeCategorized
)

func (s Shape) String() string {
	if s == ShapeSimple {
		return "simple"
	}
	return "categorized"
}

// Paths locates a collection's data files. Stats is optional.
type Paths struct {
	Pages string
	Index string
	Stats string
}

// Load reads a collection from disk. A missing canonical file yields an
// empty categorized catalog; a present canonical file with a missing
// index file yields a rebuilt index. A persisted index is loaded as-is
// so Validate can inspect it.
func Load(paths Paths) (*catalog.Catalog, Shape, error) {
	pages, shape, err := loadPages(paths.Pages)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.New(nil), ShapeCategorized, nil
		}
		return nil, ShapeCategorized, err
	}

	cat := &catalog.Catalog{Pages: pages}

	index, err := loadIndex(paths.Index)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, shape, err
		}
		cat.Rebuild()
		return cat, shape, nil
	}
	cat.Index = index
	return cat, shape, nil
}

func loadPages(path string) (catalog.PageItems, Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ShapeCategorized, fmt.Errorf("read pages %s: %w", path, err)
	}

	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ShapeCategorized, fmt.Errorf("parse pages %s: %w", path, err)
	}

	shape := ShapeSimple
	pages := make(catalog.PageItems, len(raw))
	for id, entries := range raw {
		items := make([]catalog.Item, 0, len(entries))
		for _, entry := range entries {
			var name string
			if err := json.Unmarshal(entry, &name); err == nil {
				items = append(items, catalog.Item{Name: name})
				continue
			}
			var it catalog.Item
			if err := json.Unmarshal(entry, &it); err != nil {
				return nil, shape, fmt.Errorf("parse pages %s: page %s: unrecognized record %s", path, id, entry)
			}
			shape = ShapeCategorized
			items = append(items, it)
		}
		pages[id] = items
	}
	return pages, shape, nil
}

func loadIndex(path string) (catalog.ItemPages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}
	var index catalog.ItemPages
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}
	return index, nil
}

// Save writes the collection back in the given shape: canonical store,
// derived index, and category stats when a stats path is configured.
// All files are written as one unit.
func Save(paths Paths, cat *catalog.Catalog, shape Shape) error {
	files := make(map[string][]byte, 3)

	pagesData, err := marshalPages(cat.Pages, shape)
	if err != nil {
		return err
	}
	files[paths.Pages] = pagesData

	indexData, err := json.MarshalIndent(cat.Index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	files[paths.Index] = indexData

	if paths.Stats != "" {
		statsData, err := json.MarshalIndent(cat.Stats(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		files[paths.Stats] = statsData
	}

	return writeAll(files)
}

func marshalPages(pages catalog.PageItems, shape Shape) ([]byte, error) {
	if shape == ShapeCategorized {
		data, err := json.MarshalIndent(pages, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal pages: %w", err)
		}
		return data, nil
	}

	simple := make(map[string][]string, len(pages))
	for id, items := range pages {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Name
		}
		simple[id] = names
	}
	data, err := json.MarshalIndent(simple, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pages: %w", err)
	}
	return data, nil
}

// writeAll stages every file to a temp sibling, then renames them into
// place. Temps are cleaned up if any stage fails.
func writeAll(files map[string][]byte) error {
	temps := make(map[string]string, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}

	for path, data := range files {
		if err := ensureDir(path); err != nil {
			cleanup()
			return err
		}
		tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("write %s: %w", tmp, err)
		}
		temps[path] = tmp
	}

	for path, tmp := range temps {
		if err := os.Rename(tmp, path); err != nil {
			cleanup()
			return fmt.Errorf("replace %s: %w", path, err)
		}
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
