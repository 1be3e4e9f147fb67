package cliparse

import "testing"

func TestTokenRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	if _, err := ParseFlags(nil); err == nil {
		t.Fatal("expected error when token is missing")
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("RESULTS_FILE", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := ParseFlags([]string{"-token", "123:abc"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.StorageBackend != BackendJSON {
		t.Errorf("expected json backend default, got %q", cfg.StorageBackend)
	}
	if cfg.VotesPath != "votes.json" || cfg.ResultsPath != "results.json" || cfg.ConfigPath != "config.json" {
		t.Errorf("unexpected default paths: %+v", cfg)
	}
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("BOT_TOKEN", "999:env")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATA_FILE", "custom-votes.json")
	t.Setenv("ADMIN_IDS", "42,7")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Token != "999:env" {
		t.Errorf("expected token from env, got %q", cfg.Token)
	}
	if cfg.VotesPath != "custom-votes.json" {
		t.Errorf("expected votes path from env, got %q", cfg.VotesPath)
	}
	if cfg.AdminIDs != "42,7" {
		t.Errorf("expected admin ids from env, got %q", cfg.AdminIDs)
	}
}

func TestSQLBackendRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := ParseFlags([]string{"-token", "123:abc", "-b", "sqlite"}); err == nil {
		t.Fatal("expected error when database URL is missing")
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := ParseFlags([]string{"-token", "123:abc", "-b", "mongodb"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
