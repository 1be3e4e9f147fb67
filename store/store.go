// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/picture-perfect/cliparse"
	"github.com/danielhkuo/picture-perfect/models"
)

// Backend is a flat document store. Load fills in the document for a
// logical store name, leaving the target untouched when the store has
// never been written. Save is a full overwrite: the last writer wins,
// and there is no partial update or concurrency check.
type Backend interface {
	Load(name string, into any) error
	Save(name string, doc any) error
	Close() error
}

// Open builds the backend selected by the configuration.
func Open(cfg cliparse.Config) (Backend, error) {
	switch cfg.StorageBackend {
	case cliparse.BackendJSON:
		return NewFileBackend(map[string]string{
			models.StoreVotes:   cfg.VotesPath,
			models.StoreResults: cfg.ResultsPath,
			models.StoreConfig:  cfg.ConfigPath,
		}), nil
	case cliparse.BackendSQLite, cliparse.BackendPostgres:
		return OpenSQL(cfg.StorageBackend, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Typed accessors for the three logical stores. They normalize a
// never-written store to an empty document so callers can index freely.

func LoadVotes(b Backend) (models.VoteDoc, error) {
	votes := models.VoteDoc{}
	if err := b.Load(models.StoreVotes, &votes); err != nil {
		return nil, err
	}
	if votes == nil {
		votes = models.VoteDoc{}
	}
	return votes, nil
}

func SaveVotes(b Backend, votes models.VoteDoc) error {
	return b.Save(models.StoreVotes, votes)
}

func LoadResults(b Backend) (models.ResultDoc, error) {
	results := models.ResultDoc{}
	if err := b.Load(models.StoreResults, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = models.ResultDoc{}
	}
	return results, nil
}

func SaveResults(b Backend, results models.ResultDoc) error {
	return b.Save(models.StoreResults, results)
}

func LoadConfig(b Backend) (models.BotConfig, error) {
	var cfg models.BotConfig
	if err := b.Load(models.StoreConfig, &cfg); err != nil {
		return models.BotConfig{}, err
	}
	return cfg, nil
}

func SaveConfig(b Backend, cfg models.BotConfig) error {
	return b.Save(models.StoreConfig, cfg)
}
