// Package backend is the typed binding to the inventory REST API. It wraps a
// base URL and exposes one generic resource per entity with the usual
// list/get/create/update/delete verbs. The binding does not retry, cache or
// rewrite errors; transport and status failures reach the caller as-is.
package backend

import (
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to swap the transport.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }
