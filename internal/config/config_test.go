package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENSTATES_API_KEY", "k")
	t.Setenv("OPENSTATES_URL", "")
	t.Setenv("SEARCH_PAGE_SIZE", "")
	t.Setenv("SEARCH_MAX_PAGES_PER_TERM", "")
	t.Setenv("REQUEST_DELAY_MS", "")
	t.Setenv("RATE_LIMIT_COOLDOWN_SECONDS", "")
	t.Setenv("TREND_YEAR_FLOOR", "")
	t.Setenv("SEARCH_CONFIG_PATH", "")

	cfg := Load()
	if cfg.OpenStatesURL != "https://v3.openstates.org" {
		t.Fatalf("unexpected default base URL %q", cfg.OpenStatesURL)
	}
	if cfg.PageSize != 20 || cfg.MaxPagesPerTerm != 3 {
		t.Fatalf("unexpected paging defaults: %d / %d", cfg.PageSize, cfg.MaxPagesPerTerm)
	}
	if cfg.RequestDelay != 2*time.Second {
		t.Fatalf("expected default request delay 2s, got %v", cfg.RequestDelay)
	}
	if cfg.RateLimitCooldown != 30*time.Second {
		t.Fatalf("expected default cool-down 30s, got %v", cfg.RateLimitCooldown)
	}
	if cfg.YearFloor != 2019 {
		t.Fatalf("expected default year floor 2019, got %d", cfg.YearFloor)
	}
	if len(cfg.SearchTerms) == 0 {
		t.Fatalf("expected compiled default search terms")
	}
	if !cfg.XLSXSnapshot {
		t.Fatalf("expected XLSX snapshot enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("OPENSTATES_API_KEY", "k")
	t.Setenv("SEARCH_PAGE_SIZE", "5")
	t.Setenv("REQUEST_DELAY_MS", "100")
	t.Setenv("XLSX_SNAPSHOT", "false")
	t.Setenv("SEARCH_CONFIG_PATH", "")

	cfg := Load()
	if cfg.PageSize != 5 {
		t.Fatalf("expected page size override, got %d", cfg.PageSize)
	}
	if cfg.RequestDelay != 100*time.Millisecond {
		t.Fatalf("expected delay override, got %v", cfg.RequestDelay)
	}
	if cfg.XLSXSnapshot {
		t.Fatalf("expected XLSX snapshot disabled")
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := Config{SearchTerms: []string{"artificial intelligence"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error for missing API key")
	}
	if !domain.IsKind(err, domain.ErrConfig) {
		t.Fatalf("expected configuration error kind, got %v", err)
	}

	cfg.OpenStatesAPIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresSearchTerms(t *testing.T) {
	cfg := Config{OpenStatesAPIKey: "k"}
	if err := cfg.Validate(); !domain.IsKind(err, domain.ErrConfig) {
		t.Fatalf("expected configuration error for empty term list, got %v", err)
	}
}

func TestLoadAppliesSearchConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.yaml")
	content := []byte("searchTerms:\n  - robotics\nincludeKeywords:\n  - robot\nexcludeKeywords:\n  - robocall\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write search config: %v", err)
	}

	t.Setenv("OPENSTATES_API_KEY", "k")
	t.Setenv("SEARCH_CONFIG_PATH", path)

	cfg := Load()
	if len(cfg.SearchTerms) != 1 || cfg.SearchTerms[0] != "robotics" {
		t.Fatalf("expected search terms from file, got %v", cfg.SearchTerms)
	}
	if len(cfg.IncludeKeywords) != 1 || cfg.IncludeKeywords[0] != "robot" {
		t.Fatalf("expected include keywords from file, got %v", cfg.IncludeKeywords)
	}
	if len(cfg.ExcludeKeywords) != 1 || cfg.ExcludeKeywords[0] != "robocall" {
		t.Fatalf("expected exclude keywords from file, got %v", cfg.ExcludeKeywords)
	}
}

func TestLoadIgnoresUnreadableSearchConfig(t *testing.T) {
	t.Setenv("OPENSTATES_API_KEY", "k")
	t.Setenv("SEARCH_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	if len(cfg.SearchTerms) == 0 {
		t.Fatalf("expected fallback to default terms")
	}
}
