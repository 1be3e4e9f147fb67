package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Storage backend names accepted by -b / STORE_BACKEND.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Token          string
	StorageBackend string
	DatabaseURL    string
	VotesPath      string
	ResultsPath    string
	ConfigPath     string
	CatalogPath    string
	AdminIDs       string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("picture-perfect", flag.ContinueOnError)

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.Token, "token", "", "Bot token (prefer BOT_TOKEN env)")

	// Storage config (can be CLI args or env)
	fs.StringVar(&cfg.StorageBackend, "b", "", "Storage backend (json, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite/postgres backends)")
	fs.StringVar(&cfg.VotesPath, "votes", "", "Vote store path (json backend)")
	fs.StringVar(&cfg.ResultsPath, "results", "", "Result store path (json backend)")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Config store path (json backend)")

	// Catalog and access control
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Category catalog YAML (default: compiled-in)")
	fs.StringVar(&cfg.AdminIDs, "admins", "", "Comma-separated admin user ids")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Token == "" {
		cfg.Token = os.Getenv("BOT_TOKEN")
	}
	if cfg.Token == "" {
		return Config{}, errors.New("bot token required (use -token or BOT_TOKEN env)")
	}

	if cfg.StorageBackend == "" {
		cfg.StorageBackend = os.Getenv("STORE_BACKEND")
		if cfg.StorageBackend == "" {
			cfg.StorageBackend = BackendJSON
		}
	}

	switch cfg.StorageBackend {
	case BackendJSON:
		// File paths with sensible defaults
		if cfg.VotesPath == "" {
			cfg.VotesPath = envOr("DATA_FILE", "votes.json")
		}
		if cfg.ResultsPath == "" {
			cfg.ResultsPath = envOr("RESULTS_FILE", "results.json")
		}
		if cfg.ConfigPath == "" {
			cfg.ConfigPath = envOr("CONFIG_FILE", "config.json")
		}
	case BackendSQLite, BackendPostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_FILE")
	}
	if cfg.AdminIDs == "" {
		cfg.AdminIDs = os.Getenv("ADMIN_IDS")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
