package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentKind is the filename-suffix dispatch target. Keeping it a closed
// enum makes the two supported formats explicit at every switch site.
type DocumentKind int

const (
	KindUnsupported DocumentKind = iota
	KindPDF
	KindWord
	KindLegacyWord // .doc, rejected with its own message
)

func DetectKind(filename string) DocumentKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindWord
	case ".doc":
		return KindLegacyWord
	default:
		return KindUnsupported
	}
}

type ExtractorService interface {
	Extract(data []byte, filename string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// Extract dispatches purely on the declared filename suffix, never on
// sniffed content, then normalizes the extracted text.
func (e *extractorService) Extract(data []byte, filename string) (string, error) {
	var text string
	var err error

	switch DetectKind(filename) {
	case KindPDF:
		text, err = extractPDFText(data)
	case KindWord:
		text, err = extractDocxText(data)
	case KindLegacyWord:
		return "", newError(KindUnsupportedFormat,
			"legacy .doc format is not supported, please convert to .docx or PDF", "")
	default:
		return "", newError(KindUnsupportedFormat,
			fmt.Sprintf("unsupported file format: %s (only .pdf and .docx are accepted)", filepath.Ext(filename)), "")
	}

	if err != nil {
		return "", newError(KindExtractionFailure, "failed to extract text from document", err.Error())
	}

	text = NormalizeText(text)
	if text == "" {
		return "", newError(KindEmptyOrCorrupt,
			"document contains no extractable text (scanned or image-only files are not supported)", "")
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML; turn paragraph boundaries
	// into newlines and drop the remaining markup.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return xmlTagPattern.ReplaceAllString(content, " "), nil
}

// NormalizeText collapses runs of whitespace within a line to single spaces,
// collapses runs of blank lines to exactly one blank line, and trims the
// result. Running it twice yields the same output as running it once.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")

	var cleanedLines []string
	blankPending := false

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blankPending = len(cleanedLines) > 0
			continue
		}

		if blankPending {
			cleanedLines = append(cleanedLines, "")
			blankPending = false
		}
		cleanedLines = append(cleanedLines, line)
	}

	return strings.Join(cleanedLines, "\n")
}
