// Package pdftext inspects downloaded PDFs for the metadata the summary
// composer wants: a page count and a short text snippet from the opening
// pages. Extraction is best effort; a PDF that resists parsing still gets
// cataloged, just with less detail.
package pdftext

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxSnippetLen caps the extracted snippet. Classification refinement and
// summary composition only ever look at the head of the document.
const maxSnippetLen = 2000

// maxSnippetPages bounds how deep extraction reads. Front matter is enough
// for organization signatures and topic detection.
const maxSnippetPages = 5

// Info is what inspection could recover from a PDF.
type Info struct {
	Pages   int
	Snippet string
}

// Inspect opens the PDF at path and recovers page count and an opening
// snippet. It never fails the pipeline: unreadable or image-only PDFs
// return a zero Info and a nil error.
func Inspect(path string) Info {
	f, err := os.Open(path)
	if err != nil {
		return Info{}
	}
	defer func() { _ = f.Close() }()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return Info{}
	}

	info := Info{Pages: ctx.PageCount}

	var sb strings.Builder
	limit := ctx.PageCount
	if limit > maxSnippetPages {
		limit = maxSnippetPages
	}
	for pageNr := 1; pageNr <= limit && sb.Len() < maxSnippetLen; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pageText)
	}

	snippet := sb.String()
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen]
	}
	info.Snippet = snippet
	return info
}

// extractPageText pulls the visible text out of one page's content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromStream scans content stream operators for shown text. Only the
// text-showing operators matter here; positioning operators just become
// whitespace.
func textFromStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			sb.WriteByte(' ')
		}
	}

	return collapseWhitespace(sb.String())
}

// decodePDFString handles basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			// Octal escape (e.g. \040 for space).
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// collapseWhitespace folds runs of whitespace into single spaces and drops
// non-printable runes.
func collapseWhitespace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else if unicode.IsPrint(r) {
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
