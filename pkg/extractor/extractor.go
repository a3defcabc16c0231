package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileNotFound        = errors.New("file not found")
)

// Extraction method tags stored on every chunk's metadata.
const (
	MethodPDF  = "pdf"
	MethodOCR  = "ocr"
	MethodDocx = "docx"
	MethodTxt  = "txt"
)

// Metadata describes where a block of text came from.
type Metadata struct {
	Source   string // base filename
	Page     int    // 1-based page number, 1 for page-less formats
	FilePath string
	Method   string
}

// Block is one extracted text unit (a PDF page, or a whole DOCX/TXT file).
type Block struct {
	Text string
	Meta Metadata
}

// SupportedExtension reports whether ext (with leading dot, any case) maps
// to a known extraction strategy.
func SupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".doc", ".docx", ".txt":
		return true
	}
	return false
}

// Extract converts a source file into a sequence of text blocks with
// per-block metadata, choosing a strategy by file extension.
func Extract(path string) ([]Block, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".doc", ".docx":
		return extractDocx(path)
	case ".txt":
		return extractTxt(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(path))
	}
}
