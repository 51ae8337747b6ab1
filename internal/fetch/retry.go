package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// deadDomains are hosts that no longer resolve or no longer serve their
// archives. Their documents are only reachable through the Wayback Machine.
var deadDomains = map[string]bool{
	"ready4itall.org":     true,
	"kazvswild.com":       true,
	"landsurvival.com":    true,
	"survivorlibrary.com": true,
}

// firefoxUserAgent is an alternate agent for hosts that fingerprint the
// Chrome UA used by default.
const firefoxUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0"

// IsDeadDomain reports whether urlStr belongs to a host known to be gone.
func IsDeadDomain(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	return deadDomains[host]
}

// DownloadWayback retrieves a dead-domain document through the Wayback
// Machine snapshot closest to 2024.
func (c *Client) DownloadWayback(ctx context.Context, urlStr, destPath string) (*Result, error) {
	if !IsDeadDomain(urlStr) {
		return nil, &Error{URL: urlStr, Message: "host is not on the dead-domain list"}
	}
	waybackURL := fmt.Sprintf("https://web.archive.org/web/2024/%s", urlStr)
	result, err := c.downloadOnce(ctx, waybackURL, destPath, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "Wayback Machine retrieval failed", Cause: err}
	}
	return result, nil
}

// refererHeaderSets returns the header combinations to cycle through for
// hosts that refuse requests without a same-site Referer.
func refererHeaderSets(urlStr string) []map[string]string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil
	}
	origin := parsed.Scheme + "://" + parsed.Host + "/"
	return []map[string]string{
		{"Referer": origin},
		{"Referer": origin, "Accept": "application/pdf,*/*"},
		{"Referer": origin, "User-Agent": firefoxUserAgent},
	}
}

// DownloadWithReferer retries a hotlink-protected URL, cycling through
// header combinations until one yields a PDF.
func (c *Client) DownloadWithReferer(ctx context.Context, urlStr, destPath string) (*Result, error) {
	var lastErr error
	for _, headers := range refererHeaderSets(urlStr) {
		result, err := c.downloadOnce(ctx, urlStr, destPath, headers)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &Error{URL: urlStr, Message: "no retry strategy applies"}
	}
	return nil, lastErr
}

// Retry picks the recovery strategy for a previously failed download based
// on where the URL points.
func (c *Client) Retry(ctx context.Context, urlStr, destPath string) (*Result, error) {
	switch {
	case IsGoogleDriveURL(urlStr):
		return c.DownloadDrive(ctx, urlStr, destPath)
	case IsDeadDomain(urlStr):
		return c.DownloadWayback(ctx, urlStr, destPath)
	default:
		return c.DownloadWithReferer(ctx, urlStr, destPath)
	}
}
