package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodyBytes = 5 * 1024 * 1024 // 5MB

// Response captures the response details and duration of one GET.
type Response struct {
	Status    int
	Headers   http.Header
	Body      []byte
	Truncated bool
	Duration  time.Duration
}

// Executor performs single GET requests with a bounded body read.
type Executor struct {
	client       *http.Client
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxBodyBytes = n
		}
	}
}

// NewExecutor builds an Executor with a default client.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		client:       New(DefaultConfig()),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Get issues one GET request. Transport and body read failures are returned
// as-is; any HTTP status is a successful exchange.
func (e *Executor) Get(ctx context.Context, url string, headers http.Header) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}
	for k, v := range headers {
		req.Header[k] = append([]string(nil), v...)
	}

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return Response{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, e.maxBodyBytes)
	duration := time.Since(start)
	if err != nil {
		return Response{Status: resp.StatusCode, Duration: duration}, err
	}

	return Response{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		Body:      body,
		Truncated: truncated,
		Duration:  duration,
	}, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
