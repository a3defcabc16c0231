package extractor

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"rsc.io/pdf"
)

// extractPDF attempts direct text-layer extraction first. If the text layer
// is missing (scanned documents) or the parser fails, the whole page set is
// re-processed with OCR. The fallback is page-set-wide, not per-page.
func extractPDF(path string) ([]Block, error) {
	blocks, err := extractPDFText(path)
	if err != nil {
		log.Printf("[WARN] PDF text extraction failed for %s, falling back to OCR: %v", path, err)
		return extractPDFWithOCR(path)
	}
	if len(blocks) == 0 {
		log.Printf("[INFO] No text layer in %s, falling back to OCR", path)
		return extractPDFWithOCR(path)
	}
	return blocks, nil
}

// extractPDFText reads the PDF text layer page by page. Pages without any
// non-empty text are skipped. The pdf package panics on malformed input, so
// the panic is converted into an error to trigger the OCR fallback.
func extractPDFText(path string) (blocks []Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}

	source := filepath.Base(path)
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text := renderPageText(page)
		if strings.TrimSpace(text) == "" {
			continue
		}

		blocks = append(blocks, Block{
			Text: text,
			Meta: Metadata{
				Source:   source,
				Page:     pageNum,
				FilePath: path,
				Method:   MethodPDF,
			},
		})
	}
	return blocks, nil
}

// renderPageText joins positioned text fragments into lines using their
// vertical coordinates. Fragments on the same line are separated by a space
// when there is a horizontal gap between them.
func renderPageText(page pdf.Page) string {
	var sb strings.Builder
	var lastY, lastEnd float64

	for _, t := range page.Content().Text {
		switch {
		case sb.Len() == 0:
		case t.Y != lastY:
			sb.WriteString("\n")
		case t.X > lastEnd+1:
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		lastY = t.Y
		lastEnd = t.X + t.W
	}
	return sb.String()
}

// extractPDFWithOCR renders every page to an image with pdftoppm and runs
// tesseract over each one. Both tools must be on PATH.
func extractPDFWithOCR(path string) ([]Block, error) {
	tmpDir, err := os.MkdirTemp("", "docqa-ocr-")
	if err != nil {
		return nil, fmt.Errorf("create ocr workdir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if out, err := exec.Command("pdftoppm", "-png", "-r", "200", path, prefix).CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %v: %s", err, string(out))
	}

	images, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	// pdftoppm zero-pads page numbers to a fixed width, so the
	// lexicographic order is the page order.
	sort.Strings(images)

	source := filepath.Base(path)
	blocks := make([]Block, 0, len(images))
	for i, img := range images {
		text, err := exec.Command("tesseract", img, "stdout").Output()
		if err != nil {
			return nil, fmt.Errorf("tesseract failed on page %d: %w", i+1, err)
		}
		blocks = append(blocks, Block{
			Text: string(text),
			Meta: Metadata{
				Source:   source,
				Page:     i + 1,
				FilePath: path,
				Method:   MethodOCR,
			},
		})
	}
	return blocks, nil
}
