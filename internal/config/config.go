// Package config loads a collection's ini configuration file.
package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Collection names a catalogue collection and locates its data files.
// Relative paths resolve against the config file's directory.
type Collection struct {
	Name    string
	Pages   string // canonical page→items JSON
	Index   string // derived item→pages JSON
	Stats   string // optional category stats JSON
	Lexicon string // optional YAML lexicon override
}

// Load reads a collection config, e.g.:
//
//	[collection]
//	name    = summer
//	pages   = page_items.json
//	index   = clothing_index.json
//	stats   = category_stats.json
//	lexicon = lexicon.yaml
func Load(path string) (Collection, error) {
	var c Collection
	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load collection config %s: %w", path, err)
	}

	sec := cfg.Section("collection")
	c.Name = sec.Key("name").String()
	c.Pages = sec.Key("pages").String()
	c.Index = sec.Key("index").String()
	c.Stats = sec.Key("stats").String()
	c.Lexicon = sec.Key("lexicon").String()

	if c.Pages == "" {
		return c, fmt.Errorf("collection config %s: pages path is required", path)
	}
	if c.Index == "" {
		return c, fmt.Errorf("collection config %s: index path is required", path)
	}

	dir := filepath.Dir(path)
	c.Pages = resolve(dir, c.Pages)
	c.Index = resolve(dir, c.Index)
	c.Stats = resolve(dir, c.Stats)
	c.Lexicon = resolve(dir, c.Lexicon)
	return c, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
