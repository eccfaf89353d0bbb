// Package rest provides a notice board Fetcher backed by the notice list
// HTTP endpoint.
//
// Example usage:
//
//	client := rest.New("https://board.example.com",
//	    rest.WithBearerToken(token),
//	    rest.WithTimeout(10*time.Second),
//	)
//	ctrl := board.New(client, nil, board.WithIdentity(identity))
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/noticeboard-go"
)

// DefaultListPath is the path of the notice list endpoint.
const DefaultListPath = "/api/notice/list"

const defaultTimeout = 30 * time.Second

// dateLayouts are the noticeDate formats accepted from the server.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Client fetches the complete notice list over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	listPath   string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout. The client is copied first, so a
// shared client passed to WithHTTPClient keeps its own timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithListPath overrides DefaultListPath.
func WithListPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.listPath = path
		}
	}
}

// WithBearerToken sends token in the Authorization header.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		listPath:   DefaultListPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll requests the notice list and decodes every entry.
func (c *Client) FetchAll(ctx context.Context) ([]noticeboard.Notice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.listPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request notice list")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var entries []wireNotice
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode notice list")
	}

	notices := make([]noticeboard.Notice, 0, len(entries))
	for i, e := range entries {
		n, err := e.notice()
		if err != nil {
			return nil, errors.Wrapf(err, "notice %d", i)
		}
		notices = append(notices, n)
	}

	return notices, nil
}

// wireNotice is one entry of the list response.
type wireNotice struct {
	NoticeID   json.RawMessage `json:"noticeId"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Writer     null.String     `json:"writer"`
	NoticeDate string          `json:"noticeDate"`
	ViewCount  int             `json:"viewCount"`
	Pin        int             `json:"pin"`
}

func (w wireNotice) notice() (noticeboard.Notice, error) {
	id, err := parseID(w.NoticeID)
	if err != nil {
		return noticeboard.Notice{}, err
	}

	date, err := parseDate(w.NoticeDate)
	if err != nil {
		return noticeboard.Notice{}, err
	}

	return noticeboard.Notice{
		ID:         id,
		Title:      w.Title,
		Content:    w.Content,
		Writer:     w.Writer,
		NoticeDate: date,
		ViewCount:  w.ViewCount,
		Pin:        w.Pin,
	}, nil
}

// parseID accepts a JSON string or number.
func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("missing noticeId")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.Wrap(err, "invalid noticeId")
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", errors.Wrap(err, "invalid noticeId")
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return "", errors.Errorf("invalid noticeId %s", n)
	}
	return n.String(), nil
}

// parseDate returns the zero time for an empty date.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid noticeDate %q", s)
}
