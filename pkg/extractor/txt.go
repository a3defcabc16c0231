package extractor

import (
	"log"
	"os"
	"path/filepath"
)

// extractTxt reads the whole file as one page-less block. A read failure is
// treated as recoverable: it yields an empty sequence instead of an error.
func extractTxt(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[WARN] TXT read failed for %s: %v", path, err)
		return []Block{}, nil
	}

	return []Block{{
		Text: string(data),
		Meta: Metadata{
			Source:   filepath.Base(path),
			Page:     1,
			FilePath: path,
			Method:   MethodTxt,
		},
	}}, nil
}
