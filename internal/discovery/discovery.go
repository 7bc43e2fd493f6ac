// Package discovery turns command line paths into the flat list of source
// files handed to the parser.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options controls which files are collected.
type Options struct {
	// Extensions lists accepted file extensions, including the dot.
	Extensions []string
	// ExcludeDirs names directories that are never descended into.
	ExcludeDirs []string
}

// Collect expands roots into absolute file paths. Directories are walked
// recursively in lexical order and filtered by extension; files named
// directly are always kept. Each path appears once, in first-seen order.
func Collect(roots []string, opts Options) ([]string, error) {
	c := collector{
		opts: opts,
		seen: make(map[string]bool),
	}

	for _, root := range roots {
		if err := c.add(root); err != nil {
			return nil, err
		}
	}

	if c.files == nil {
		return []string{}, nil
	}
	return c.files, nil
}

type collector struct {
	opts  Options
	seen  map[string]bool
	files []string
}

func (c *collector) add(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}

	if !info.IsDir() {
		c.keep(abs)
		return nil
	}

	err = filepath.WalkDir(abs, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return c.processDirectoryEntry(abs, path, de)
	})
	if err != nil {
		return fmt.Errorf("failed to scan directory %s: %w", root, err)
	}
	return nil
}

func (c *collector) processDirectoryEntry(root, path string, de fs.DirEntry) error {
	if de.IsDir() {
		if path != root && c.excluded(de.Name()) {
			return filepath.SkipDir
		}
		return nil
	}

	if c.matchesExtension(path) {
		c.keep(path)
	}
	return nil
}

func (c *collector) keep(path string) {
	if c.seen[path] {
		return
	}
	c.seen[path] = true
	c.files = append(c.files, path)
}

func (c *collector) excluded(name string) bool {
	for _, dir := range c.opts.ExcludeDirs {
		if dir == name {
			return true
		}
	}
	return false
}

func (c *collector) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range c.opts.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
