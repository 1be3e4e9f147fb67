// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

// NewBackend creates a file-backed document store rooted in a fresh
// temp dir, so every test starts from never-written stores.
func NewBackend(t *testing.T) store.Backend {
	t.Helper()
	dir := t.TempDir()
	return store.NewFileBackend(map[string]string{
		models.StoreVotes:   filepath.Join(dir, "votes.json"),
		models.StoreResults: filepath.Join(dir, "results.json"),
		models.StoreConfig:  filepath.Join(dir, "config.json"),
	})
}

// Catalog is a small two-category fixture: p1 with options A/B and p2
// with options C/D.
func Catalog() models.Catalog {
	return models.Catalog{
		{ID: "p1", Title: "Best Picture", Options: []string{"A", "B"}},
		{ID: "p2", Title: "Best Director", Options: []string{"C", "D"}},
	}
}

// User builds a deterministic participant from an id.
func User(id int64) models.User {
	return models.User{
		ID:       id,
		Name:     fmt.Sprintf("User%d", id),
		Username: fmt.Sprintf("user%d", id),
	}
}
