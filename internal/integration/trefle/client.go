// Package trefle implements the plant catalog on top of the Trefle REST API.
package trefle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

const (
	// DefaultBaseURL is the public Trefle API root.
	DefaultBaseURL = "https://trefle.io/api/v1"
	// DefaultTimeout bounds a single catalog request.
	DefaultTimeout = 10 * time.Second

	userAgent       = "care-for-plants/1.0"
	maxResponseSize = 4 << 20
)

// Cache stores raw catalog responses between requests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// CacheRecorder observes whether a catalog request was served from cache.
type CacheRecorder interface {
	RecordCacheLookup(hit bool)
}

// Config holds the Trefle client settings. Recorder is optional.
type Config struct {
	Token    string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Recorder CacheRecorder
}

// Client implements adapter.PlantCatalog.
type Client struct {
	token    string
	baseURL  string
	cacheTTL time.Duration
	timeout  time.Duration
	http     *http.Client
	cache    Cache
	recorder CacheRecorder
}

// NewClient creates a Trefle client. cache may be nil to disable caching.
func NewClient(cfg Config, cache Cache) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		token:    strings.TrimSpace(cfg.Token),
		baseURL:  baseURL,
		cacheTTL: cfg.CacheTTL,
		timeout:  timeout,
		http:     &http.Client{Timeout: timeout},
		cache:    cache,
		recorder: cfg.Recorder,
	}
}

var _ adapter.PlantCatalog = (*Client)(nil)

// Search returns the species matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]adapter.SpeciesSummary, error) {
	params := url.Values{}
	params.Set("q", query)

	var resp searchResponse
	if err := c.get(ctx, "/plants/search", params, &resp); err != nil {
		return nil, err
	}

	results := make([]adapter.SpeciesSummary, 0, len(resp.Data))
	for _, hit := range resp.Data {
		results = append(results, hit.toSummary())
	}
	return results, nil
}

// Lookup fetches the full record of one species.
func (c *Client) Lookup(ctx context.Context, externalID int64) (*valueobject.SpeciesAttributes, error) {
	var resp plantResponse
	if err := c.get(ctx, "/plants/"+strconv.FormatInt(externalID, 10), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domainerror.ErrSpeciesNotFound
	}

	attrs := resp.Data.toAttributes()
	attrs.ExternalID = externalID
	return attrs, nil
}

// get performs a GET request and decodes the JSON body into out. Successful
// bodies are cached by request path and query.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	cacheKey := "trefle:" + path + "?" + params.Encode()

	if c.cache != nil {
		hit := false
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			hit = json.Unmarshal(body, out) == nil
		}
		if c.recorder != nil {
			c.recorder.RecordCacheLookup(hit)
		}
		if hit {
			slog.Debug("plant catalog cache hit", "key", cacheKey)
			return nil
		}
	}

	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		slog.Warn("plant catalog returned malformed data", "path", path, "error", err)
		return fmt.Errorf("%w: decode response: %w", domainerror.ErrLookupFailure, err)
	}

	if c.cache != nil && c.cacheTTL > 0 {
		c.cache.Set(ctx, cacheKey, body, c.cacheTTL)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domainerror.ErrLookupFailure, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("plant catalog request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", domainerror.ErrLookupFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domainerror.ErrLookupFailure, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerror.ErrSpeciesNotFound
	case resp.StatusCode != http.StatusOK:
		slog.Warn("plant catalog returned unexpected status", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", domainerror.ErrLookupFailure, resp.StatusCode)
	}
	return body, nil
}
