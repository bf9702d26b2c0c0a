// Package jmapi is the HTTP gateway to the Jakarta Mandarin backend.
// Every page controller consumes it through its own narrow interface;
// this client satisfies all of them.
package jmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jakartamandarin/console/core"
	"github.com/jakartamandarin/console/core/auth"
	"github.com/jakartamandarin/console/core/dashboard"
	"github.com/jakartamandarin/console/core/settings"
	"github.com/jakartamandarin/console/core/student"
	"github.com/jakartamandarin/console/core/user"
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  core.Logger

	// TokenFunc returns the current bearer token, "" when signed out.
	TokenFunc func() string
}

type Client struct {
	baseURL string
	http    *http.Client
	log     core.Logger
	tokenFn func() string
}

// interface compliance checks
var (
	_ user.Gateway         = (*Client)(nil)
	_ student.Gateway      = (*Client)(nil)
	_ dashboard.Gateway    = (*Client)(nil)
	_ dashboard.SEAGateway = (*Client)(nil)
	_ dashboard.SSCGateway = (*Client)(nil)
	_ settings.Gateway     = (*Client)(nil)
	_ auth.ResetGateway    = (*Client)(nil)
)

func NewClient(opts *Options) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		log:     opts.Logger,
		tokenFn: opts.TokenFunc,
	}
}

// errorBody matches the backend's error payload; message may be a
// string or a list of strings.
type errorBody struct {
	Message interface{} `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s [%s]", method, path, reqID)
	}
	defer resp.Body.Close()

	c.log.Debug(fmt.Sprintf(
		"%s %s -> %d (%s) [%s]",
		method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), reqID,
	))

	if resp.StatusCode >= http.StatusMultipleChoices {
		return rejection(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

// rejection turns a non-2xx response into a RemoteError, extracting
// the backend's message when the body carries one.
func rejection(resp *http.Response) error {
	rerr := &core.RemoteError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return rerr
	}

	var body errorBody
	if json.Unmarshal(raw, &body) != nil {
		return rerr
	}
	switch msg := body.Message.(type) {
	case string:
		rerr.Message = msg
	case []interface{}:
		parts := make([]string, 0, len(msg))
		for _, m := range msg {
			if s, ok := m.(string); ok {
				parts = append(parts, s)
			}
		}
		rerr.Message = strings.Join(parts, "; ")
	}
	return rerr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) patch(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
