// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileBackend keeps each logical store in its own JSON file. A missing
// file reads as an empty document; a malformed file is an error with no
// auto-repair - the operator restores or deletes the file by hand.
type FileBackend struct {
	paths map[string]string
}

// NewFileBackend maps logical store names to file paths.
func NewFileBackend(paths map[string]string) *FileBackend {
	return &FileBackend{paths: paths}
}

func (f *FileBackend) path(name string) (string, error) {
	p, ok := f.paths[name]
	if !ok {
		return "", fmt.Errorf("no path configured for store %q", name)
	}
	return p, nil
}

func (f *FileBackend) Load(name string, into any) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store %q: %w", name, err)
	}

	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("malformed store %q at %s: %w", name, path, err)
	}
	return nil
}

func (f *FileBackend) Save(name string, doc any) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store %q: %w", name, err)
	}

	// Full-file rewrite, last writer wins.
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store %q: %w", name, err)
	}
	return nil
}

func (f *FileBackend) Close() error {
	return nil
}
