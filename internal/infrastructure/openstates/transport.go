package openstates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

const apiKeyHeader = "X-API-KEY"
const maxErrorBodyBytes = 2048

type searchResponse struct {
	Results    []billResult `json:"results"`
	Pagination struct {
		NextURL string `json:"next_url"`
	} `json:"pagination"`
	NextLink string `json:"next"`
}

// next returns the continuation link; pagination.next_url wins over the
// top-level form when both are present.
func (r searchResponse) next() string {
	if r.Pagination.NextURL != "" {
		return r.Pagination.NextURL
	}
	return r.NextLink
}

type billResult struct {
	Jurisdiction struct {
		Name string `json:"name"`
	} `json:"jurisdiction"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Abstracts  []struct {
		Abstract string `json:"abstract"`
	} `json:"abstracts"`
	Actions []struct {
		Description string `json:"description"`
	} `json:"actions"`
	Session   string `json:"session"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Sources   []struct {
		URL string `json:"url"`
	} `json:"sources"`
}

func (r billResult) toDomain() domain.Bill {
	bill := domain.Bill{
		Jurisdiction: r.Jurisdiction.Name,
		Identifier:   r.Identifier,
		Title:        r.Title,
		Session:      r.Session,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if len(r.Abstracts) > 0 {
		bill.Abstract = r.Abstracts[0].Abstract
	}
	if len(r.Sources) > 0 {
		bill.URL = r.Sources[0].URL
	}
	for _, action := range r.Actions {
		bill.Actions = append(bill.Actions, action.Description)
	}
	return bill
}

func (c *Client) doGet(ctx context.Context, requestURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bills search request: %w", err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveRequest(strconv.Itoa(resp.StatusCode))
	}

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if resp.StatusCode == http.StatusTooManyRequests && c.metrics != nil {
			c.metrics.ObserveRateLimitWait()
		}
		return &HTTPStatusError{
			Operation:  "bills search",
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode search response: %w", err)
	}
	return nil
}
