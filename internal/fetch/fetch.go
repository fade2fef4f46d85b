// Package fetch is the blocking HTTP layer for remote-page sources. One
// request per attempt: a timeout or error counts as that backend's failure
// and is never retried here.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultTimeout bounds a page fetch when the caller does not configure one.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent mirrors a desktop browser; some sites refuse bare bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client wraps http.Client with the fixed timeout and user agent the
// extraction chain expects.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
	// RedirectMaxHops caps redirect following. Zero means default (5).
	RedirectMaxHops int
}

// Page is a fetched remote document plus the transport facts the provenance
// record wants.
type Page struct {
	Body        []byte
	StatusCode  int
	ContentType string
	Encoding    string
}

// Get fetches one URL. The body is decoded to UTF-8 when the response
// declares a different charset, so downstream parsing never sees mixed
// encodings.
func (c *Client) Get(ctx context.Context, rawURL string) (Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !isHTTPScheme(u) {
		return Page{}, fmt.Errorf("unsupported URL: %q", rawURL)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("new request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{StatusCode: resp.StatusCode}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	charset := charsetOf(contentType)
	decoded, encName := decode(body, charset)

	return Page{
		Body:        decoded,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Encoding:    encName,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		return strings.ToLower(params["charset"])
	}
	return ""
}

// decode converts body to UTF-8 according to the declared charset. Unknown
// or missing charsets pass the bytes through and report utf-8.
func decode(body []byte, charset string) ([]byte, string) {
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return body, "utf-8"
	}
	enc, err := htmlindex.Get(charset)
	if err != nil || enc == nil {
		return body, "utf-8"
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return body, "utf-8"
	}
	return out, charset
}
