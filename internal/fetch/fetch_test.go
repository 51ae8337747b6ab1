package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pdfBody is a minimal payload that passes the PDF magic check.
var pdfBody = append([]byte("%PDF-1.4\n"), make([]byte, 200)...)

func testClient() *Client {
	return NewClient(&Options{
		Timeout:    5 * time.Second,
		UserAgent:  DefaultUserAgent,
		MaxRetries: 0,
	})
}

func TestDownload_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdfBody)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "doc.pdf")
	result, err := testClient().Download(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pdfBody)), result.SizeBytes)
	assert.FileExists(t, dest)
}

func TestDownload_InvalidURL(t *testing.T) {
	_, err := testClient().Download(context.Background(), "not-a-valid-url", "ignored")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestDownload_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "doc.pdf")
	_, err := testClient().Download(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.NoFileExists(t, dest)
}

func TestDownload_RejectsHTMLErrorPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Not found</body></html>"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "doc.pdf")
	_, err := testClient().Download(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")
	assert.NoFileExists(t, dest)
}

func TestDownload_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(pdfBody)
	}))
	defer server.Close()

	client := NewClient(&Options{Timeout: 5 * time.Second, UserAgent: DefaultUserAgent, MaxRetries: 1})
	dest := filepath.Join(t.TempDir(), "doc.pdf")
	_, err := client.Download(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDownload_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write(pdfBody)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "doc.pdf")
	_, err := testClient().Download(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestDownloadWithReferer_CyclesHeaderSets(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		// First header set lacks the Accept header; refuse it.
		if r.Header.Get("Accept") != "application/pdf,*/*" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write(pdfBody)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "doc.pdf")
	result, err := testClient().DownloadWithReferer(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.FileExists(t, result.Path)
}

func TestExtractDriveID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"open with id param", "https://docs.google.com/open?id=0B5x_abc-123", "0B5x_abc-123"},
		{"file path form", "https://docs.google.com/file/d/1AbCdEf/edit", "1AbCdEf"},
		{"no id", "https://example.com/doc.pdf", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDriveID(tt.url))
		})
	}
}

func TestDirectDriveURL(t *testing.T) {
	got := DirectDriveURL("https://docs.google.com/open?id=XYZ_9")
	assert.Equal(t, "https://docs.google.com/uc?export=download&id=XYZ_9", got)

	plain := "https://example.com/doc.pdf"
	assert.Equal(t, plain, DirectDriveURL(plain))
}

func TestDriveConfirmURL(t *testing.T) {
	page := []byte(`<html><body>
		<form id="download-form" action="https://drive.usercontent.google.com/download" method="get">
			<input type="hidden" name="id" value="FILE123">
			<input type="hidden" name="confirm" value="tok42">
			<input type="hidden" name="export" value="download">
		</form>
	</body></html>`)

	got := driveConfirmURL(page, "FILE123")
	assert.Contains(t, got, "https://drive.usercontent.google.com/download?")
	assert.Contains(t, got, "confirm=tok42")
	assert.Contains(t, got, "id=FILE123")
}

func TestIsDeadDomain(t *testing.T) {
	assert.True(t, IsDeadDomain("http://www.ready4itall.org/docs/guide.pdf"))
	assert.True(t, IsDeadDomain("https://survivorlibrary.com/library/x.pdf"))
	assert.False(t, IsDeadDomain("https://example.com/x.pdf"))
}

func TestDownloadWayback_RefusesLiveDomain(t *testing.T) {
	_, err := testClient().DownloadWayback(context.Background(), "https://example.com/x.pdf", "ignored")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dead-domain")
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "doc.pdf")
	require.NoError(t, writeFile(dest, pdfBody))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, pdfBody, data)
}
