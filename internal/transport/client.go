// Package transport provides the HTTP client used by remote model-config
// sources, with optional bearer-token authentication.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/infercast/infercast/pkg/constants"
	pkgerrors "github.com/infercast/infercast/pkg/errors"
)

// Client provides HTTP client functionality with authentication.
type Client struct {
	http  *http.Client
	token string
}

// New creates a transport client. An empty token means unauthenticated
// requests, which public model configs accept.
func New(token string) *Client {
	return &Client{
		http:  &http.Client{Timeout: constants.DefaultHTTPTimeout},
		token: token,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
// Deadline and client-timeout failures are normalized onto ErrTimeout so
// callers can branch on errors.IsTimeout.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) ||
			(errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, pkgerrors.ErrTimeout)
		}
		return nil, err
	}
	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.WrapIO("create", "GET "+url, err)
	}
	return c.Do(req)
}
