package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

type Config struct {
	LogLevel string

	OpenStatesAPIKey string
	OpenStatesURL    string

	SearchTerms     []string
	IncludeKeywords []string
	ExcludeKeywords []string

	PageSize          int
	MaxPagesPerTerm   int
	RequestDelay      time.Duration
	RateLimitCooldown time.Duration

	YearFloor int

	OutputDir    string
	XLSXSnapshot bool

	MetricsPort string
}

// SearchConfig is the optional YAML override for search terms and relevance
// keyword lists.
type SearchConfig struct {
	SearchTerms     []string `yaml:"searchTerms"`
	IncludeKeywords []string `yaml:"includeKeywords"`
	ExcludeKeywords []string `yaml:"excludeKeywords"`
}

func defaultSearchTerms() []string {
	return []string{
		"artificial intelligence",
		"machine learning",
		"automated decision",
		"algorithmic accountability",
		"deepfake",
		"facial recognition",
		"generative AI",
	}
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		OpenStatesAPIKey: mustEnv("OPENSTATES_API_KEY", ""),
		OpenStatesURL:    mustEnv("OPENSTATES_URL", "https://v3.openstates.org"),

		SearchTerms: defaultSearchTerms(),

		PageSize:          mustEnvInt("SEARCH_PAGE_SIZE", 20),
		MaxPagesPerTerm:   mustEnvInt("SEARCH_MAX_PAGES_PER_TERM", 3),
		RequestDelay:      time.Duration(mustEnvInt("REQUEST_DELAY_MS", 2000)) * time.Millisecond,
		RateLimitCooldown: time.Duration(mustEnvInt("RATE_LIMIT_COOLDOWN_SECONDS", 30)) * time.Second,

		YearFloor: mustEnvInt("TREND_YEAR_FLOOR", 2019),

		OutputDir:    mustEnv("OUTPUT_DIR", "./data/output"),
		XLSXSnapshot: mustEnvBool("XLSX_SNAPSHOT", true),

		MetricsPort: mustEnv("METRICS_PORT", ""),
	}

	if path := os.Getenv("SEARCH_CONFIG_PATH"); path != "" {
		applySearchConfig(&cfg, path)
	}
	return cfg
}

// Validate catches fatal setup problems before any network call is made.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OpenStatesAPIKey) == "" {
		return domain.WrapError(domain.ErrConfig, "validate", fmt.Errorf("OPENSTATES_API_KEY is not set"))
	}
	if len(c.SearchTerms) == 0 {
		return domain.WrapError(domain.ErrConfig, "validate", fmt.Errorf("no search terms configured"))
	}
	return nil
}

func applySearchConfig(cfg *Config, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		// Missing override file falls back to compiled defaults.
		return
	}
	var sc SearchConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return
	}
	if len(sc.SearchTerms) > 0 {
		cfg.SearchTerms = sc.SearchTerms
	}
	if len(sc.IncludeKeywords) > 0 {
		cfg.IncludeKeywords = sc.IncludeKeywords
	}
	if len(sc.ExcludeKeywords) > 0 {
		cfg.ExcludeKeywords = sc.ExcludeKeywords
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
