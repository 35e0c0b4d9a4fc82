// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminapi implements the repo.AdminAPI interface as a client
// of the back-office REST API. The bearer token which is obtained by
// the Login method is kept in a repo.KVStore under the TokenKey key,
// so it survives restarts, and is attached to all later requests.
//
// Every non-2xx response is reported as an *APIError carrying the
// message of the server (or a generic message based on the status)
// and wrapped in a cerr.Error. Client errors (4xx) keep their status
// code, while other failures are reported as 502 Bad Gateway.
package adminapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/repo"
)

// TokenKey is the durable storage key of the bearer token.
const TokenKey = "admin_token"

// DefaultTimeout bounds each request, unless WithHTTPClient is used.
const DefaultTimeout = 15 * time.Second

// maxErrorBody limits the amount of an error response which is read.
const maxErrorBody = 64 << 10

// APIError is the single error type which is returned for non-2xx
// responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is safe for concurrent use. Its token is shared by all
// callers, matching a single back-office user.
type Client struct {
	baseURL *url.URL
	hc      *http.Client
	tokens  repo.KVStore
}

// Option configures a Client in the New function.
type Option func(c *Client) error

// WithHTTPClient replaces the default http.Client (which has the
// DefaultTimeout timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if c.hc != nil {
			return errors.New("http client is already configured")
		}
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.hc = hc
		return nil
	}
}

// WithTimeout uses a default http.Client with the d timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout (%v) must be positive", d)
		}
		return WithHTTPClient(&http.Client{Timeout: d})(c)
	}
}

// New instantiates a Client for the baseURL API root, such as
// https://api.example.com (the /admin prefix is appended per request).
// The tokens store keeps the bearer token.
func New(baseURL string, tokens repo.KVStore, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme %q is not http(s)", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	c := &Client{baseURL: u, tokens: tokens}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: DefaultTimeout}
	}
	return c, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do sends req and decodes the JSON response body into out (unless
// out is nil or the response has no body).
func (c *Client) do(ctx context.Context, req request, out any) error {
	err := c.send(ctx, req, out)
	if err != nil {
		log.Error(
			ctx, "admin API request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			log.Err("err", err),
		)
	}
	return err
}

func (c *Client) send(ctx context.Context, req request, out any) error {
	u := *c.baseURL
	u.Path += "/admin" + req.path
	u.RawQuery = req.query.Encode()

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	hr, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	token, found, err := c.tokens.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}
	if found && token != "" {
		hr.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(hr)
	if err != nil {
		return cerr.BadGateway(fmt.Errorf("sending request: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.BadGateway(fmt.Errorf("reading response: %w", err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return cerr.BadGateway(fmt.Errorf("unmarshalling response: %w", err))
	}
	return nil
}

func responseError(resp *http.Response) error {
	ae := &APIError{
		StatusCode: resp.StatusCode,
		Message:    "API error: " + resp.Status,
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &eb) == nil && eb.Message != "" {
		ae.Message = eb.Message
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &cerr.Error{Err: ae, HTTPStatusCode: resp.StatusCode}
	}
	return cerr.BadGateway(ae)
}

func pageQuery(page, limit int, sort string) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	return q
}

func escape(id string) string {
	return "/" + url.PathEscape(id)
}
