// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is one award slot with an ordered list of selectable options.
// The option text is its identity: ballots and results store the option
// string itself, and scoring compares trimmed, lowercased option text.
type Category struct {
	ID      string   `yaml:"id" json:"id"`
	Title   string   `yaml:"title" json:"title"`
	Options []string `yaml:"options" json:"options"`
}

// Option returns the option at index i, or false when i is out of range
// (stale or tampered callback payloads land here).
func (c Category) Option(i int) (string, bool) {
	if i < 0 || i >= len(c.Options) {
		return "", false
	}
	return c.Options[i], true
}

// Catalog is the immutable category list for one voting period. It is
// built once at startup and passed into every component that needs it.
type Catalog []Category

// ByID returns the category with the given id.
func (c Catalog) ByID(id string) (Category, bool) {
	for _, cat := range c {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// LoadCatalog reads a category catalog from a YAML file. The file holds
// a list of categories with the same shape as Category.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return catalog, nil
}

func (c Catalog) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	seen := make(map[string]bool, len(c))
	for i, cat := range c {
		if cat.ID == "" {
			return fmt.Errorf("category %d has no id", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
		if cat.Title == "" {
			return fmt.Errorf("category %q has no title", cat.ID)
		}
		if len(cat.Options) == 0 {
			return fmt.Errorf("category %q has no options", cat.ID)
		}
	}
	return nil
}

// DefaultCatalog is the compiled-in 98th Academy Awards catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:    "best_picture",
			Title: "Best Picture",
			Options: []string{
				"Bugonia", "F1", "Frankenstein", "Hamnet", "Marty Supreme",
				"One Battle After Another", "The Secret Agent",
				"Sentimental Value", "Sinners", "Train Dreams",
			},
		},
		{
			ID:    "best_director",
			Title: "Best Director",
			Options: []string{
				"Ryan Coogler — Sinners",
				"Paul Thomas Anderson — One Battle After Another",
				"Josh Safdie — Marty Supreme",
				"Joachim Trier — Sentimental Value",
				"Chloé Zhao — Hamnet",
			},
		},
		{
			ID:    "best_actor",
			Title: "Best Actor",
			Options: []string{
				"Timothée Chalamet — Marty Supreme",
				"Leonardo DiCaprio — One Battle After Another",
				"Ethan Hawke — Blue Moon",
				"Michael B. Jordan — Sinners",
				"Wagner Moura — The Secret Agent",
			},
		},
		{
			ID:    "best_actress",
			Title: "Best Actress",
			Options: []string{
				"Jessie Buckley — Hamnet",
				"Rose Byrne — If I Had Legs, I'd Kick You",
				"Kate Hudson — Song Sung Blue",
				"Renate Reinsve — Sentimental Value",
				"Emma Stone — Bugonia",
			},
		},
		{
			ID:    "best_supporting_actor",
			Title: "Best Supporting Actor",
			Options: []string{
				"Benicio del Toro — One Battle After Another",
				"Miles Caton — Sinners",
				"Jacob Elordi — Frankenstein",
				"Delroy Lindo — Sinners",
				"Sean Penn — One Battle After Another",
			},
		},
		{
			ID:    "best_supporting_actress",
			Title: "Best Supporting Actress",
			Options: []string{
				"Elle Fanning — Sentimental Value",
				"Inga Ibsdotter Lilleaas — Sentimental Value",
				"Amy Madigan — Weapons",
				"Wunmi Mosaku — Sinners",
				"Teyana Taylor — One Battle After Another",
			},
		},
		{
			ID:    "best_animated",
			Title: "Best Animated Feature",
			Options: []string{
				"Arco", "Elio", "KPop Demon Hunters",
				"Little Amélie or the Character of Rain", "Zootopia 2",
			},
		},
		{
			ID:    "best_adapted_screenplay",
			Title: "Best Adapted Screenplay",
			Options: []string{
				"One Battle After Another — Paul Thomas Anderson",
				"Hamnet — Chloé Zhao",
				"Frankenstein — Guillermo del Toro et al.",
				"Train Dreams — Clint Bentley",
				"The Secret Agent — Paul Thomas Anderson",
			},
		},
	}
}
