// Package fetch retrieves job postings from the web and reduces them to the
// plain description text the matching engine consumes.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the matcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// Error reports a failed posting fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures posting fetches.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // render with a headless browser when static HTML is too thin
}

// DefaultOptions returns the defaults used by the CLI and server.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Result holds the outcome of fetching one job posting.
type Result struct {
	URL        string
	HTML       string
	Text       string
	Platform   Platform
	StatusCode int
}

// Posting fetches a job posting URL and extracts its description text,
// falling back to headless-browser rendering for script-heavy boards when
// opts.UseBrowser is set.
func Posting(ctx context.Context, postingURL string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(postingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: postingURL, Message: "invalid URL", Cause: err}
	}

	html, status, err := get(ctx, postingURL, opts)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(postingURL)
	text, err := ExtractPostingText(html, platform)
	if err != nil {
		return nil, &Error{URL: postingURL, Message: "extracting text", Cause: err}
	}

	if opts.UseBrowser && RenderedTooThin(text) {
		rendered, renderErr := RenderWithBrowser(ctx, postingURL, opts.Timeout)
		if renderErr != nil {
			return nil, &Error{URL: postingURL, Message: "browser rendering", Cause: renderErr}
		}
		html = rendered
		if text, err = ExtractPostingText(html, platform); err != nil {
			return nil, &Error{URL: postingURL, Message: "extracting rendered text", Cause: err}
		}
	}

	return &Result{
		URL:        postingURL,
		HTML:       html,
		Text:       text,
		Platform:   platform,
		StatusCode: status,
	}, nil
}

// get performs the plain HTTP fetch.
func get(ctx context.Context, postingURL string, opts *Options) (html string, status int, err error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", 0, &Error{URL: postingURL, Message: "building request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, &Error{URL: postingURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, &Error{URL: postingURL, Message: "reading response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, &Error{URL: postingURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return string(body), resp.StatusCode, nil
}

// ExtractPostingText parses posting HTML and returns the description text.
// Noise elements are removed first; platform-specific selectors are tried
// before the generic ones, with <body> as the final fallback.
func ExtractPostingText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .cookie-banner, .sidebar, .apply-widget").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors(platform) {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return collapseLines(content.Text()), nil
}

// collapseLines trims each line and drops blank ones.
func collapseLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
