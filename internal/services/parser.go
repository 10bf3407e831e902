package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentParser converts uploaded CV bytes into plain text. A document that
// cannot be converted fails with ErrDocumentUnreadable; that is distinct from
// a document that converts to empty-but-valid text.
type DocumentParser interface {
	ExtractText(fileName string, data []byte) (string, error)
}

type documentParser struct{}

func NewDocumentParser() DocumentParser {
	return &documentParser{}
}

func (p *documentParser) ExtractText(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return p.extractPDF(data)
	case ".docx":
		return p.extractDocx(data)
	case ".txt":
		return p.extractPlain(data)
	default:
		// Unknown extensions are accepted as plain text when the bytes are
		// valid UTF-8, matching how text-like CV exports are uploaded.
		return p.extractPlain(data)
	}
}

func (p *documentParser) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrDocumentUnreadable, err)
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
			// Skip unreadable pages; the document fails below only if no
			// page yielded text.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in PDF", ErrDocumentUnreadable)
	}

	return text, nil
}

func (p *documentParser) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse docx: %v", ErrDocumentUnreadable, err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func (p *documentParser) extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid UTF-8 text", ErrDocumentUnreadable)
	}
	return string(data), nil
}
