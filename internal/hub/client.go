// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package hub is a minimal client for the Hugging Face Hub HTTP API.  It
// supports the operations required to publish a small text file to a
// dataset repository and to read the dataset statistics.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefEndpoint is the default Hub endpoint.
	DefEndpoint = "https://huggingface.co"
	// DefRevision is the default branch.
	DefRevision = "main"
	// RepoTypeDataset is the dataset repository type.
	RepoTypeDataset = "dataset"
)

var (
	ErrNoToken = errors.New("hub token is empty")
	ErrNoRepo  = errors.New("hub repository is empty")
)

// Client is the Hub API client.
type Client struct {
	cl       *http.Client
	endpoint string
	token    string
	repo     string
	repoType string
	revision string
	timeout  time.Duration
	lg       *slog.Logger
}

// Option is the client option.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithEndpoint sets the Hub endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithRevision sets the branch to commit to.
func WithRevision(rev string) Option {
	return func(c *Client) {
		if rev != "" {
			c.revision = rev
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New returns the client for the dataset repository repo ("owner/name"),
// authenticated with token.
func New(token string, repo string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	if repo == "" || !strings.Contains(repo, "/") {
		return nil, fmt.Errorf("%w: %q must be in form owner/name", ErrNoRepo, repo)
	}
	c := &Client{
		cl:       &http.Client{},
		endpoint: DefEndpoint,
		token:    token,
		repo:     repo,
		repoType: RepoTypeDataset,
		revision: DefRevision,
		lg:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		cl := *c.cl
		cl.Timeout = c.timeout
		c.cl = &cl
	}
	return c, nil
}

// Repo returns the repository name.
func (c *Client) Repo() string {
	return c.repo
}

// apiURL returns the URL of the repository API method.
func (c *Client) apiURL(method string) string {
	u := c.endpoint + "/api/" + c.repoType + "s/" + c.repo
	if method != "" {
		u += "/" + method + "/" + url.PathEscape(c.revision)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, u string, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.lg.DebugContext(ctx, "hub request", "method", method, "url", u)
	return c.cl.Do(req)
}

func (c *Client) postJSON(ctx context.Context, u string, v any) (*http.Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, u, "application/json", bytes.NewReader(data))
}

// parseResponse decodes the successful response into v, or returns the
// *APIError.
func parseResponse(v any, resp *http.Response) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if v == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
