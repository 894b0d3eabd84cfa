package facepunch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newpunch-journalist/internal/fanout"
)

// PagePlaceholder is replaced with the 1-based page number in listing URL templates.
const PagePlaceholder = "{pageNum}"

// FetchError reports a listing page that could not be fetched.
// StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("facepunch: fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("facepunch: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches forum listing pages.
type Client struct {
	host      string
	client    *http.Client
	userAgent string
}

// NewClient creates a listing client. host is the forum origin, e.g.
// "https://forum.facepunch.com".
func NewClient(host string, timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		host:      strings.TrimRight(host, "/"),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Host returns the forum origin used to absolutize thread links.
func (c *Client) Host() string { return c.host }

// ListingURL joins the forum host with a category path template such as
// "/f/sh/p/{pageNum}".
func (c *Client) ListingURL(pathTemplate string) string {
	return c.host + "/" + strings.TrimLeft(pathTemplate, "/")
}

// PageURL expands a listing template for one page.
func PageURL(urlTemplate string, page int) string {
	return strings.ReplaceAll(urlTemplate, PagePlaceholder, strconv.Itoa(page))
}

// FetchPages GETs pages 1..pages of a listing concurrently and returns the
// bodies in page order. Any failed page fails the whole call.
func (c *Client) FetchPages(ctx context.Context, urlTemplate string, pages int) ([][]byte, error) {
	return fanout.All(ctx, pages, func(ctx context.Context, i int) ([]byte, error) {
		return c.fetchPage(ctx, PageURL(urlTemplate, i+1))
	})
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	return body, nil
}
