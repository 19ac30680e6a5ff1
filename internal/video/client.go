// Package video finds sign videos for a word on the online LSF dictionary
// and hands a chosen one to an external player.
package video

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/abhisek/lsftui/internal/logging"
)

const (
	DefaultBaseURL = "https://dico.elix-lsf.fr/dictionnaire/"
	DefaultTimeout = 15 * time.Second
)

// Client looks up dictionary pages.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the dictionary root. The word is appended to it.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets the HTTP client used for lookups. A nil client keeps
// the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds a whole lookup, whatever HTTP client is in use.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageURL returns the dictionary page for word.
func (c *Client) PageURL(word string) string {
	base := c.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(strings.TrimSpace(word))
}

// Lookup fetches the page for word and returns its .mp4 video URLs in
// document order, without duplicates.
func (c *Client) Lookup(ctx context.Context, word string) ([]string, error) {
	if strings.TrimSpace(word) == "" {
		return nil, fmt.Errorf("video: empty word")
	}
	page := c.PageURL(word)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", page, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, page)
	}

	base, _ := url.Parse(page)
	urls, err := ParseVideos(resp.Body, base)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info("video lookup", "word", word, "found", len(urls))
	return urls, nil
}

// ParseVideos extracts the .mp4 sources of <video> elements, including
// nested <source> children. Relative sources resolve against base when it
// is non-nil.
func ParseVideos(r io.Reader, base *url.URL) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var (
		urls []string
		seen = map[string]bool{}
	)
	add := func(src string) {
		src = strings.TrimSpace(src)
		if src == "" {
			return
		}
		if base != nil {
			if ref, err := url.Parse(src); err == nil {
				src = base.ResolveReference(ref).String()
			}
		}
		if !isMP4(src) || seen[src] {
			return
		}
		seen[src] = true
		urls = append(urls, src)
	}

	var walk func(n *html.Node, inVideo bool)
	walk = func(n *html.Node, inVideo bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "video":
				add(attr(n, "src"))
				inVideo = true
			case "source":
				if inVideo {
					add(attr(n, "src"))
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, inVideo)
		}
	}
	walk(doc, false)
	return urls, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isMP4(src string) bool {
	if u, err := url.Parse(src); err == nil {
		src = u.Path
	}
	return strings.HasSuffix(strings.ToLower(src), ".mp4")
}
