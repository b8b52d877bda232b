package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/portalesuite/portale-client/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// TokenSource yields the header-ready Authorization value for the current
// session, or "" when no session exists. The session store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client executes HTTP calls against the backend and returns the uniform
// Result for every outcome. It performs exactly one attempt per call: no
// retries, no caching, no deduplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// New builds a Client for the given base URL. A nil httpClient falls back to
// http.DefaultClient; a nil tokens source leaves every request
// unauthenticated; a nil log discards diagnostics.
func New(baseURL string, tokens TokenSource, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, tokens: tokens, log: log}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestOptions customizes a single call made through Do.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body, when non-nil, is JSON-serialized into the request body.
	Body any
	// Header entries are merged last, so they win on key collision.
	Header map[string]string
	// NoAuth skips Authorization injection even when a session exists.
	NoAuth bool
}

// Get issues an authenticated GET to path.
func (c *Client) Get(ctx context.Context, path string) Result {
	return c.Do(ctx, path, RequestOptions{})
}

// Post issues an authenticated POST with the given JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodPost, Body: body})
}

// Put issues an authenticated PUT with the given JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodPut, Body: body})
}

// Delete issues an authenticated DELETE to path.
func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.Do(ctx, path, RequestOptions{Method: http.MethodDelete})
}

// Do builds and executes one request. The target is baseURL+path, verbatim:
// the path owns its leading slash and no separator normalization happens.
// Transport failures never propagate; they come back as a Result with
// Status 0 and a classifier message.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) Result {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var reader io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			c.log.Warn(ctx, "request body not serializable", "method", method, "path", path, "error", err)
			return Result{Status: 0, Raw: Body{Kind: BodyInvalid, Err: err}, Message: msgGeneric}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.log.Warn(ctx, "request not buildable", "method", method, "path", path, "error", err)
		return Result{Status: 0, Raw: Body{Kind: BodyInvalid, Err: err}, Message: msgGeneric}
	}

	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !opts.NoAuth && c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", token)
		}
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	// Caller-supplied headers win on collision.
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err)
		return Result{Status: 0, Raw: Body{Kind: BodyInvalid, Err: err}, Message: classifyTransport(err, c.baseURL)}
	}
	defer resp.Body.Close()

	res := normalize(resp)
	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", res.Status, "ok", res.OK)
	return res
}
