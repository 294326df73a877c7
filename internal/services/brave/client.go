package brave

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/killallgit/search-gateway/internal/metrics"
	"github.com/killallgit/search-gateway/internal/models"
)

const (
	// DefaultBaseURL is the Brave Search REST API root
	DefaultBaseURL = "https://api.search.brave.com/res/v1"
	// DefaultUserAgent identifies the gateway to the provider
	DefaultUserAgent = "SearchGateway/1.0"
	// DefaultTimeout bounds a single provider call
	DefaultTimeout = 10 * time.Second

	// TokenHeader carries the subscription credential
	TokenHeader = "X-Subscription-Token"
)

// Config holds configuration for the Brave Search client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RetryAttempts is the number of extra attempts after a transport
	// failure, 429 or 5xx. Zero disables retries.
	RetryAttempts int
	RetryWait     time.Duration
}

// Client handles communication with the Brave Search API
type Client struct {
	http      *resty.Client
	baseURL   string
	userAgent string
}

// NewClient creates a new Brave Search API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryAttempts < 0 {
		cfg.RetryAttempts = 0
	}

	httpClient := resty.New().
		SetLogger(restyLogger{}).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryAttempts).
		AddRetryCondition(shouldRetry)
	if cfg.RetryWait > 0 {
		httpClient.SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(4 * cfg.RetryWait)
	}

	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// Endpoint returns the full provider URL for a category
func (c *Client) Endpoint(category models.Category) string {
	return c.baseURL + "/" + category.Endpoint()
}

// Search issues one provider query for the request's category. Failures
// are returned as *APIError.
func (c *Client) Search(ctx context.Context, req models.SearchRequest, apiKey string) (*models.UpstreamPayload, error) {
	endpoint := c.Endpoint(req.Category)

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetHeader(TokenHeader, apiKey).
		SetQueryParam("q", req.Query).
		Get(endpoint)
	metrics.ObserveUpstream(req.Category.String(), time.Since(start))

	if err != nil {
		return nil, transportError(endpoint, err)
	}

	if !resp.IsSuccess() {
		return nil, statusError(endpoint, resp.StatusCode(), reasonPhrase(resp.StatusCode(), resp.Status()), resp.Body())
	}

	var payload models.UpstreamPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, malformedError(endpoint, resp.StatusCode(), resp.Body(), err)
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("category", req.Category.String()).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("brave search completed")

	return &payload, nil
}

// reasonPhrase strips the numeric code from a status line such as
// "503 Service Unavailable"
func reasonPhrase(code int, status string) string {
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}

func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// restyLogger routes resty's internal messages through zerolog
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "brave").Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "brave").Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "brave").Msgf(format, v...)
}
