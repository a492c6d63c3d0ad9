package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/ledgerline-labs/sheetfeed/internal/connectors/google"
	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client performs GET requests against the spreadsheets feed API.
// Private requests carry a bearer token from the TokenProvider; no
// retries or backoff beyond the rate limiter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     driven.TokenProvider
	limiter    *google.RateLimiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the feed API base URL. Used by tests to point
// the client at a local server.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = h }
}

// WithRateLimiter overrides the rate limiter.
func WithRateLimiter(l *google.RateLimiter) ClientOption {
	return func(c *Client) { c.limiter = l }
}

// NewClient creates a feed API client with the given token provider.
func NewClient(tokens driven.TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		tokens:     tokens,
		limiter:    google.NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSpreadsheets fetches the authenticated user's full spreadsheet
// list.
func (c *Client) ListSpreadsheets(ctx context.Context) ([]domain.Spreadsheet, error) {
	var doc spreadsheetListDoc
	if err := c.get(ctx, spreadsheetsURL(c.baseURL), true, &doc); err != nil {
		return nil, fmt.Errorf("list spreadsheets: %w", err)
	}
	return doc.project()
}

// Worksheet fetches metadata for one tab of a worksheet.
func (c *Client) Worksheet(ctx context.Context, worksheetID string, tabID int) (*domain.Tab, error) {
	var doc worksheetEntryDoc
	if err := c.get(ctx, worksheetURL(c.baseURL, worksheetID, tabID), true, &doc); err != nil {
		return nil, fmt.Errorf("worksheet %s/%d: %w", worksheetID, tabID, err)
	}
	return doc.project()
}

// PrivateRows fetches the authenticated row feed for a worksheet tab.
func (c *Client) PrivateRows(ctx context.Context, worksheetID string, tabID int) (*domain.RowFeed, error) {
	var doc listFeedDoc
	if err := c.get(ctx, privateRowsURL(c.baseURL, worksheetID, tabID), true, &doc); err != nil {
		return nil, fmt.Errorf("rows %s/%d: %w", worksheetID, tabID, err)
	}
	return doc.project()
}

// PublicRows fetches the public row feed of a published spreadsheet.
// No authentication step is involved.
func (c *Client) PublicRows(ctx context.Context, key string, tabID int) (*domain.RowFeed, error) {
	var doc listFeedDoc
	if err := c.get(ctx, publicRowsURL(c.baseURL, key, tabID), false, &doc); err != nil {
		return nil, fmt.Errorf("public rows %s/%d: %w", key, tabID, err)
	}
	return doc.project()
}

func (c *Client) get(ctx context.Context, url string, private bool, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if private {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("GET %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		c.recordRateLimit(err)
		return google.WrapError(err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode feed: %w", err)
	}
	return nil
}

// recordRateLimit feeds a 429 Retry-After header back into the limiter.
func (c *Client) recordRateLimit(err error) {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != http.StatusTooManyRequests {
		return
	}
	retryAfter, _ := strconv.Atoi(gerr.Header.Get("Retry-After"))
	c.limiter.RecordRateLimitError(retryAfter)
}
