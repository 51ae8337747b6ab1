// Package fetch retrieves source documents over HTTP and verifies that what
// came back is a usable PDF. It centralizes the download logic used by the
// initial retrieval pass and the retry pass.
package fetch

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests. Several
// archive mirrors refuse requests with a non-browser agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// minPDFSize rejects tiny responses that are almost always an HTML error
// page served with a 200 status.
const minPDFSize = 100

var pdfMagic = []byte("%PDF")

// Result describes one completed download.
type Result struct {
	URL         string
	Path        string
	SizeBytes   int64
	ContentType string
	StatusCode  int
}

// Error represents an error during document retrieval.
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

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	MaxRetries int
	// InsecureTLS skips certificate verification. Several of the archive
	// hosts in the source list serve expired or self-signed certificates.
	InsecureTLS bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxRetries:  2,
		InsecureTLS: true,
	}
}

// Client wraps an http.Client with the retry and PDF verification rules
// shared by every download strategy.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient builds a client from opts. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	// Cookie jar is required for Google Drive's confirmation flow.
	jar, _ := cookiejar.New(nil)
	transport := &http.Transport{}
	if opts.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		opts: opts,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Jar:       jar,
			Transport: transport,
		},
	}
}

// Download retrieves urlStr into destPath and verifies the payload looks
// like a PDF. Transient failures are retried with a linear backoff. On
// failure no file is left behind at destPath.
func (c *Client) Download(ctx context.Context, urlStr, destPath string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &Error{URL: urlStr, Message: "cancelled", Cause: ctx.Err()}
			case <-time.After(time.Duration(attempt) * 2 * time.Second):
			}
		}

		result, err := c.downloadOnce(ctx, urlStr, destPath, nil)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// DownloadWithHeaders is Download with extra request headers and no retry
// loop. Retry strategies iterate header sets themselves.
func (c *Client) DownloadWithHeaders(ctx context.Context, urlStr, destPath string, headers map[string]string) (*Result, error) {
	return c.downloadOnce(ctx, urlStr, destPath, headers)
}

func (c *Client) downloadOnce(ctx context.Context, urlStr, destPath string, headers map[string]string) (*Result, error) {
	body, resp, err := c.get(ctx, urlStr, headers)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(body, pdfMagic) {
		if len(body) < minPDFSize {
			return nil, &Error{
				URL:     urlStr,
				Message: fmt.Sprintf("response too small (%d bytes) and not a PDF", len(body)),
			}
		}
		return nil, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("response is not a PDF (content-type: %s)", resp.Header.Get("Content-Type")),
		}
	}

	if err := writeFile(destPath, body); err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to write file", Cause: err}
	}

	return &Result{
		URL:         urlStr,
		Path:        destPath,
		SizeBytes:   int64(len(body)),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}, nil
}

// get performs one GET request and returns the full body. The caller owns
// PDF verification; get only enforces transport-level success.
func (c *Client) get(ctx context.Context, urlStr string, headers map[string]string) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return body, resp, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}
	return body, resp, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
