package appcenter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"appcenter-datasource-backend/internal/metrics"
)

const (
	HeaderAPIToken = "X-API-Token"

	DefaultMaxRetries = 3
	DefaultTimeout    = 30 * time.Second
)

// EmptyBody is what a request that exhausted its retries yields.
var EmptyBody = []byte("{}")

// Response is the outcome of one logical GET, retries included.
// A non-nil Err means every attempt failed and Body is EmptyBody.
type Response struct {
	Body     []byte
	Attempts int
	Err      error
}

// Degraded reports whether the body is the fail-open placeholder.
func (r Response) Degraded() bool {
	return r.Err != nil
}

type Requestor interface {
	Get(ctx context.Context, rawURL string, params url.Values) Response
}

type ClientOptions struct {
	APIKey     string
	MaxRetries int
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables
	HTTPClient *http.Client
	Counters   *metrics.Counters
}

type client struct {
	apiKey     string
	maxRetries int
	httpClient *http.Client
	limiter    *rate.Limiter
	counters   *metrics.Counters
}

func NewClient(opts ClientOptions) Requestor {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	burst := 1
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
		burst = max(1, int(opts.RateLimit))
	}

	return &client{
		apiKey:     opts.APIKey,
		maxRetries: opts.MaxRetries,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		counters:   opts.Counters,
	}
}

// Get performs an authenticated GET, retrying failures immediately up to
// maxRetries more times. It never returns an error to the caller: when every
// attempt fails the response carries EmptyBody and the last error.
func (c *client) Get(ctx context.Context, rawURL string, params url.Values) Response {
	target := withQuery(rawURL, params)

	attempts := 0
	var body []byte
	operation := func() error {
		attempts++
		b, err := c.do(ctx, target)
		if err != nil {
			return err
		}
		body = b
		return nil
	}
	notify := func(err error, _ time.Duration) {
		c.record(metrics.OutcomeRetry)
		log.Warn().Err(err).Int("attempt", attempts).Str("url", target).Msgf("Retrying (Attempt %d)", attempts)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(c.maxRetries)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		c.record(metrics.OutcomeDegraded)
		log.Error().Err(err).Int("attempts", attempts).Str("url", target).Msg("Failed on last attempt")
		return Response{Body: EmptyBody, Attempts: attempts, Err: err}
	}

	c.record(metrics.OutcomeSuccess)
	if attempts > 1 {
		log.Info().Int("attempt", attempts).Str("url", target).Msg("Retried successfully")
	}
	return Response{Body: body, Attempts: attempts}
}

func (c *client) do(ctx context.Context, target string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderAPIToken, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("app center request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status_code", resp.StatusCode).Bytes("response_body", respBody).Str("url", target).Msg("App Center returned non-2xx status")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return respBody, nil
}

func (c *client) record(outcome string) {
	if c.counters != nil {
		c.counters.RemoteRequests.Inc(outcome)
	}
}

func withQuery(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + params.Encode()
}
