package openstates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
	"github.com/legintel/ai-legislation-tracker/internal/infrastructure/resilience"
)

// Metrics is the slice of pipeline metrics the client reports into.
type Metrics interface {
	ObserveRequest(statusCode string)
	ObserveRateLimitWait()
	ObserveTermAbandoned()
}

type Config struct {
	BaseURL           string
	APIKey            string
	PageSize          int
	MaxPagesPerTerm   int
	RequestDelay      time.Duration
	RateLimitCooldown time.Duration
}

// Client searches the OpenStates v3 bills endpoint one term at a time.
// Every request, inter-page and inter-term alike, passes through the same
// rate limiter, so request pacing holds regardless of server-side throttling.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	maxPages   int
	cooldown   time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
	executor   *resilience.Executor
	logger     *slog.Logger
	metrics    Metrics
}

func New(cfg Config, executor *resilience.Executor, logger *slog.Logger, metrics Metrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	maxPages := cfg.MaxPagesPerTerm
	if maxPages <= 0 {
		maxPages = 3
	}

	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		pageSize:   pageSize,
		maxPages:   maxPages,
		cooldown:   cfg.RateLimitCooldown,
		limiter:    rate.NewLimiter(limit, 1),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		executor:   executor,
		logger:     logger,
		metrics:    metrics,
	}
}

// Search returns every bill the upstream reports for the term, following
// continuation links up to the configured page cap. A query-validation
// rejection is retried once with a simplified query; anything still failing
// after the retry policy abandons the term.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Bill, error) {
	bills, err := c.searchQuery(ctx, term, c.pageSize)
	if err == nil {
		return bills, nil
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnprocessableEntity {
		simplified := simplifyTerm(term)
		size := c.pageSize / 2
		if size < 1 {
			size = 1
		}
		c.logger.Warn("query rejected, retrying simplified",
			"term", term,
			"simplified", simplified,
			"page_size", size,
			"error", err,
		)
		bills, err = c.searchQuery(ctx, simplified, size)
		if err == nil {
			return bills, nil
		}
	}

	if c.metrics != nil {
		c.metrics.ObserveTermAbandoned()
	}
	return nil, domain.WrapError(domain.ErrUpstream, "search bills", err)
}

func (c *Client) searchQuery(ctx context.Context, query string, pageSize int) ([]domain.Bill, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(pageSize))
	requestURL := fmt.Sprintf("%s/bills?%s", c.baseURL, params.Encode())

	var bills []domain.Bill
	for page := 0; page < c.maxPages && requestURL != ""; page++ {
		var response searchResponse
		if err := c.getJSON(ctx, requestURL, &response); err != nil {
			return nil, err
		}
		for _, result := range response.Results {
			bills = append(bills, result.toDomain())
		}
		requestURL = response.next()
	}
	return bills, nil
}

func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	return c.executor.Execute(ctx, "bills_search", func(ctx context.Context) error {
		return c.doGet(ctx, requestURL, out)
	}, c.classify)
}

// simplifyTerm degrades a multi-word query to its first word, the shape the
// upstream reliably accepts.
func simplifyTerm(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return term
	}
	return fields[0]
}
