package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/palemoky/dice-room/internal/apperrors"
)

// RequestIDHeader carries a per-call id for correlation with server logs.
const RequestIDHeader = "X-Request-ID"

// Client calls the room service. It holds no per-room state and is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request. Zero keeps the http client's own timeout.
// A client passed to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the service rooted at baseURL, for example
// "http://localhost:8080/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// call describes one endpoint invocation.
type call struct {
	op       string
	method   string
	path     string
	query    url.Values
	body     any
	fallback string // business error message when the server sends none
	notFound error  // returned instead of the generic error on 404
}

func (c *Client) url(cl call) string {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}
	return u
}

// do runs cl and decodes the envelope's data into T. Failures are logged
// here and returned unchanged to the caller.
func do[T any](ctx context.Context, c *Client, cl call) (T, error) {
	data, err := roundTrip[T](ctx, c, cl)
	if err != nil {
		c.log.Error().Err(err).Str("op", cl.op).Str("method", cl.method).Str("path", cl.path).Msg("room api call failed")
	}
	return data, err
}

func roundTrip[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var zero T

	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return zero, fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl), body)
	if err != nil {
		return zero, fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", cl.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode == http.StatusNotFound && cl.notFound != nil {
			return zero, cl.notFound
		}
		return zero, apperrors.NewHTTPError(cl.op, resp.StatusCode)
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return zero, fmt.Errorf("%s: decode response: %w", cl.op, err)
	}
	if env.Code != businessOK {
		return zero, apperrors.NewBusinessError(cl.op, resp.StatusCode, env.Code, env.Message, cl.fallback)
	}
	return env.Data, nil
}
