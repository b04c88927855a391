// Package crossref fetches work metadata from the Crossref REST API.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cenkalti/backoff/v4"

	"github.com/aalvaropc/commonmeta/internal/buildinfo"
	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/identifier"
	"github.com/aalvaropc/commonmeta/internal/infra/httpclient"
	"github.com/aalvaropc/commonmeta/internal/infra/logger"
	"github.com/aalvaropc/commonmeta/internal/infra/metrics"
	"github.com/aalvaropc/commonmeta/internal/ports"
)

const DefaultBaseURL = "https://api.crossref.org"

type Client struct {
	exec      *httpclient.Executor
	baseURL   string
	mailto    string
	userAgent string
	retry     domain.RetryConfig
	metrics   *metrics.Fetch

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

// WithMailto identifies the caller for the Crossref polite pool.
func WithMailto(mailto string) Option {
	return func(c *Client) { c.mailto = strings.TrimSpace(mailto) }
}

func WithRetry(rc domain.RetryConfig) Option {
	return func(c *Client) { c.retry = rc }
}

func WithMetrics(m *metrics.Fetch) Option {
	return func(c *Client) { c.metrics = m }
}

// WithClock overrides the clock used by the elapsed-time guard (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithSleep overrides how the client waits between attempts (useful for tests).
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	c := &Client{
		exec:    httpclient.NewExecutor(),
		baseURL: base,
		retry:   domain.DefaultConfig().Retry,
		now:     time.Now,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.retry.MaxAttempts < 1 {
		c.retry.MaxAttempts = 1
	}
	if c.retry.MaxInterval < c.retry.InitialInterval {
		c.retry.MaxInterval = c.retry.InitialInterval
	}
	c.userAgent = fmt.Sprintf("commonmeta/%s (https://github.com/aalvaropc/commonmeta)", buildinfo.Version)
	if c.mailto != "" {
		c.userAgent = fmt.Sprintf("commonmeta/%s (https://github.com/aalvaropc/commonmeta; mailto:%s)", buildinfo.Version, c.mailto)
	}
	return c
}

// NewFromConfig wires a client from the upstream and retry sections of cfg.
func NewFromConfig(cfg domain.Config, opts ...Option) *Client {
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(httpclient.FromUpstream(cfg.Upstream))),
		httpclient.WithMaxBodyBytes(cfg.Upstream.MaxBodyBytes),
	)
	base := []Option{
		WithExecutor(exec),
		WithMailto(cfg.Upstream.Mailto),
		WithRetry(cfg.Retry),
	}
	return New(cfg.Upstream.BaseURL, append(base, opts...)...)
}

var _ ports.MetadataFetcher = (*Client)(nil)

// Fetch retrieves the work document for id. Transient failures are retried
// up to MaxAttempts and while the next wait still fits into MaxElapsed;
// not_found and malformed_response outcomes return immediately.
func (c *Client) Fetch(ctx context.Context, id identifier.DOI) (domain.RawDocument, error) {
	log := logger.From(ctx)
	schedule := c.schedule()
	start := c.now()

	attempt := 0
	for {
		attempt++
		log.Debug("crossref.attempt", "doi", id.String(), "attempt", attempt)

		doc, err := c.fetchOnce(ctx, id)
		if err == nil {
			return doc, nil
		}
		if !domain.IsRetryable(err) || attempt >= c.retry.MaxAttempts {
			return nil, withAttempts(err, attempt)
		}

		delay := schedule.NextBackOff()
		if delay == backoff.Stop || (c.retry.MaxElapsed > 0 && c.now().Sub(start)+delay > c.retry.MaxElapsed) {
			log.Warn("crossref.retry_budget_exhausted", "doi", id.String(), "attempt", attempt, "elapsed", c.now().Sub(start).String())
			return nil, withAttempts(err, attempt)
		}

		log.Info("crossref.retry", "doi", id.String(), "attempt", attempt, "delay", delay.String(), "error", err.Error())
		c.metrics.Retry()

		if serr := c.sleep(ctx, delay); serr != nil {
			return nil, withAttempts(fetchError(id, domain.KindTransient, 0, serr), attempt)
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, id identifier.DOI) (domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError(id, domain.KindTransient, 0, err)
	}

	resp, err := c.exec.Get(ctx, c.workURL(id), c.headers())
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			err = cerr
		}
		c.metrics.Observe(metrics.OutcomeTransient, resp.Duration.Seconds())
		return nil, fetchError(id, domain.KindTransient, resp.Status, err)
	}

	kind, ok := classifyStatus(resp.Status)
	if !ok {
		c.metrics.Observe(outcomeFor(kind), resp.Duration.Seconds())
		return nil, fetchError(id, kind, resp.Status, fmt.Errorf("upstream responded %d %s", resp.Status, http.StatusText(resp.Status)))
	}

	doc, err := decodeWork(resp)
	if err != nil {
		c.metrics.Observe(metrics.OutcomeMalformedResponse, resp.Duration.Seconds())
		return nil, fetchError(id, domain.KindMalformedResponse, resp.Status, err)
	}

	c.metrics.Observe(metrics.OutcomeOK, resp.Duration.Seconds())
	return doc, nil
}

func (c *Client) workURL(id identifier.DOI) string {
	u := c.baseURL + "/works/" + url.PathEscape(id.String())
	if c.mailto != "" {
		u += "?" + url.Values{"mailto": {c.mailto}}.Encode()
	}
	return u
}

func (c *Client) headers() http.Header {
	return http.Header{
		"Accept":     {"application/json"},
		"User-Agent": {c.userAgent},
	}
}

// schedule returns the exponential wait sequence between attempts. The
// attempt and elapsed bounds are enforced by Fetch, not by the schedule.
func (c *Client) schedule() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     c.retry.InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         c.retry.MaxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

// classifyStatus maps a non-2xx status to the fetch taxonomy.
func classifyStatus(status int) (domain.ErrorKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", true
	case status == http.StatusNotFound:
		return domain.KindNotFound, false
	case status == http.StatusRequestTimeout,
		status == http.StatusTooEarly,
		status == http.StatusTooManyRequests,
		status >= 500:
		return domain.KindTransient, false
	default:
		return domain.KindMalformedResponse, false
	}
}

// decodeWork unwraps {"status":"ok","message":{...}}.
func decodeWork(resp httpclient.Response) (domain.RawDocument, error) {
	if resp.Truncated {
		return nil, fmt.Errorf("response body exceeds %d bytes", len(resp.Body))
	}

	var envelope any
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("response body is not valid JSON: %w", err)
	}

	status, err := jsonpath.Get("$.status", envelope)
	if err != nil {
		return nil, fmt.Errorf("response envelope: %w", err)
	}
	if status != "ok" {
		return nil, fmt.Errorf("response envelope status %v", status)
	}

	message, err := jsonpath.Get("$.message", envelope)
	if err != nil {
		return nil, fmt.Errorf("response envelope: %w", err)
	}
	work, ok := message.(map[string]any)
	if !ok {
		return nil, errors.New("response message is not an object")
	}
	return domain.RawDocument(work), nil
}

func fetchError(id identifier.DOI, kind domain.ErrorKind, status int, err error) error {
	return &domain.OpError{
		Op:     "crossref.fetch",
		Kind:   kind,
		Path:   id.String(),
		Status: status,
		Err:    err,
	}
}

func withAttempts(err error, attempts int) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		oe.Attempts = attempts
	}
	return err
}

func outcomeFor(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindNotFound:
		return metrics.OutcomeNotFound
	case domain.KindTransient:
		return metrics.OutcomeTransient
	default:
		return metrics.OutcomeMalformedResponse
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
