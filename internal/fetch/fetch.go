package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// FetchError wraps anything that kept a page from being retrieved and parsed:
// transport errors, non-2xx responses and unparseable bodies.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Options struct {
	UserAgent string
	Timeout   time.Duration
	// DebugDir, when set, receives a copy of every fetched page.
	DebugDir string
}

// Client retrieves HTML pages.
type Client struct {
	http     *resty.Client
	debugDir string
}

func NewClient(opts Options) *Client {
	c := resty.New().
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "nb-NO,nb;q=0.9,no;q=0.8,en;q=0.7")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	return &Client{http: c, debugDir: opts.DebugDir}
}

// Document GETs url and parses the body. name identifies the page in logs and
// debug dumps.
func (c *Client) Document(ctx context.Context, name, url string) (*goquery.Document, error) {
	slog.DebugContext(ctx, "fetching page", "page", name, "url", url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() > 299 {
		return nil, &FetchError{URL: url, Status: res.StatusCode()}
	}

	body := res.Body()
	c.saveDebug(ctx, name, body)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parse html: %w", err)}
	}
	slog.InfoContext(ctx, "fetched page", "page", name, "bytes", len(body), "elapsed", res.Time())
	return doc, nil
}

func (c *Client) saveDebug(ctx context.Context, name string, body []byte) {
	if c.debugDir == "" {
		return
	}
	if err := os.MkdirAll(c.debugDir, 0o755); err != nil {
		slog.WarnContext(ctx, "failed creating debug dir", "dir", c.debugDir, "err", err)
		return
	}
	fname := filepath.Join(c.debugDir, name+".html")
	if err := os.WriteFile(fname, body, 0o644); err != nil {
		slog.WarnContext(ctx, "failed writing debug HTML", "file", fname, "err", err)
		return
	}
	slog.InfoContext(ctx, "saved debug HTML", "file", fname)
}
