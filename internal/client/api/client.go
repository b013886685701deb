// Package api is the single outbound channel to the banking REST service.
//
// One resty client carries fixed configuration (base URL, JSON content type),
// a request hook that attaches the current bearer credential, and a response
// hook that maps failure statuses onto the package's error taxonomy. On an
// authorization failure (401/403) the response hook invokes the injected
// callback before the error reaches the caller, so session teardown is never
// observed after the fact.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// CredentialSource returns the current bearer token, or "" when anonymous.
// It is read at request time, so a token established after the client was
// built is picked up without any further wiring.
type CredentialSource func() string

// Client is the configured gateway to the remote service. All endpoint
// groups (auth, users, accounts, transactions, admin) hang off it.
type Client struct {
	http        *resty.Client
	credentials CredentialSource
	authFailure func()
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithCredentialSource injects the token lookup used by the request hook.
func WithCredentialSource(src CredentialSource) Option {
	return func(c *Client) { c.credentials = src }
}

// WithAuthorizationFailureHandler injects the callback run whenever any
// response comes back 401 or 403. The handler fires before the failed call
// returns to its caller.
func WithAuthorizationFailureHandler(fn func()) Option {
	return func(c *Client) { c.authFailure = fn }
}

// New builds the gateway. baseURL is the API root (e.g. "http://host/api");
// a zero timeout leaves the transport's default in place.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	r := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		r.SetTimeout(timeout)
	}

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.credentials == nil {
			return nil
		}
		if token := c.credentials(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		return c.checkStatus(resp)
	})

	c.http = r
	return c
}

// checkStatus turns failure statuses into errors from the package taxonomy.
// 2xx responses pass through untouched.
func (c *Client) checkStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code < http.StatusBadRequest:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		if c.authFailure != nil {
			c.authFailure()
		}
		return fmt.Errorf("%s %s: %w", resp.Request.Method, resp.Request.URL, ErrUnauthorized)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s %s: status %d: %w", resp.Request.Method, resp.Request.URL, code, ErrUnavailable)
	default:
		return &APIError{Status: code, Message: envelopeMessage(resp.Body())}
	}
}

// envelope is the common wrapper every backend response carries.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// envelopeMessage extracts the server message from an error body,
// tolerating bodies that do not decode.
func envelopeMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

// do issues one request and decodes the envelope's data field into T.
// The response hook has already rejected failure statuses, so by the time
// decoding runs the status is 2xx.
func do[T any](ctx context.Context, c *Client, method, path string, body any, query url.Values) (T, error) {
	var zero T

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, mapError(err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}
	if !env.Success {
		return zero, fmt.Errorf("%s %s: success=false on status %d: %w", method, path, resp.StatusCode(), ErrMalformedResponse)
	}

	var out T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return zero, fmt.Errorf("%s %s: decoding data: %w: %v", method, path, ErrMalformedResponse, err)
		}
	}
	return out, nil
}

// doAck issues a request whose data payload is irrelevant (acks, deletes).
func doAck(ctx context.Context, c *Client, method, path string, body any) error {
	_, err := do[json.RawMessage](ctx, c, method, path, body, nil)
	return err
}

// mapError classifies an error returned by the transport. Errors already in
// the package taxonomy pass through; anything else is a transport failure.
func mapError(err error) error {
	var apiErr *APIError
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrMalformedResponse) || errors.As(err, &apiErr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
