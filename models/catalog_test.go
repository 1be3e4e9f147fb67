// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	if err := catalog.validate(); err != nil {
		t.Fatalf("compiled-in catalog invalid: %v", err)
	}
	if len(catalog) != 8 {
		t.Errorf("expected 8 categories, got %d", len(catalog))
	}
}

func TestOptionBounds(t *testing.T) {
	cat := Category{ID: "p1", Title: "T", Options: []string{"A", "B"}}

	if opt, ok := cat.Option(1); !ok || opt != "B" {
		t.Errorf("expected option B, got %q ok=%v", opt, ok)
	}
	if _, ok := cat.Option(2); ok {
		t.Error("expected out-of-range index to be rejected")
	}
	if _, ok := cat.Option(-1); ok {
		t.Error("expected negative index to be rejected")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
- id: song
  title: Best Song
  options: [Alpha, Beta]
- id: score
  title: Best Score
  options: [Gamma]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(catalog))
	}
	cat, ok := catalog.ByID("song")
	if !ok || cat.Options[1] != "Beta" {
		t.Errorf("unexpected category %+v", cat)
	}
}

func TestLoadCatalogRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
- id: song
  title: Best Song
  options: [Alpha]
- id: song
  title: Best Song Again
  options: [Beta]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
