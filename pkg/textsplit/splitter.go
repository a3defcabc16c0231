package textsplit

import (
	"strings"
)

// defaultSeparators is the split priority: paragraph break, line break,
// word boundary, and finally individual characters.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter splits long text into chunks of at most chunkSize characters,
// carrying 'overlap' characters of trailing context into the next chunk.
// It splits recursively by a priority list of separators so chunks break at
// the largest natural boundary possible. Deterministic for identical input.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &Splitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split returns the ordered chunk sequence for text. Lengths are measured in
// runes, not bytes, so multi-byte characters are never cut in half.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.splitRecursive(text, s.separators)
}

func (s *Splitter) splitRecursive(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	remaining := []string{}
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	splits := splitWithSeparator(text, separator)

	var chunks []string
	var good []string
	for _, piece := range splits {
		if runeLen(piece) <= s.chunkSize {
			good = append(good, piece)
			continue
		}
		// Flush pieces collected so far, then break the oversized piece down
		// with the finer separators.
		chunks = append(chunks, s.merge(good, separator)...)
		good = nil
		if len(remaining) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.splitRecursive(piece, remaining)...)
		}
	}
	chunks = append(chunks, s.merge(good, separator)...)
	return chunks
}

// merge greedily joins adjacent splits into chunks no longer than chunkSize,
// then rewinds the window to keep 'overlap' characters of trailing context.
func (s *Splitter) merge(splits []string, separator string) []string {
	if len(splits) == 0 {
		return nil
	}
	sepLen := runeLen(separator)

	var chunks []string
	var window []string
	total := 0

	for _, piece := range splits {
		l := runeLen(piece)
		if len(window) > 0 && total+l+sepLen > s.chunkSize {
			if joined := join(window, separator); joined != "" {
				chunks = append(chunks, joined)
			}
			// Drop from the front until only the overlap remains.
			for len(window) > 0 && (total > s.overlap || total+l+sepLen > s.chunkSize) {
				total -= runeLen(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}
		if len(window) > 0 {
			total += sepLen
		}
		window = append(window, piece)
		total += l
	}

	if joined := join(window, separator); joined != "" {
		chunks = append(chunks, joined)
	}
	return chunks
}

func splitWithSeparator(text, separator string) []string {
	var parts []string
	if separator == "" {
		for _, r := range text {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(text, separator)
	}
	filtered := parts[:0]
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func join(parts []string, separator string) string {
	return strings.TrimSpace(strings.Join(parts, separator))
}

func runeLen(s string) int {
	return len([]rune(s))
}
