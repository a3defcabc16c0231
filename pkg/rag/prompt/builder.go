package prompt

import (
	"fmt"
	"strings"

	"doc-qa-be/pkg/store"
)

// Template selects one of the prebuilt prompt forms. An explicit enum keeps
// the selection type-safe instead of caching prepared prompts by their
// rendered text.
type Template int

const (
	TemplateBase Template = iota
	TemplateWithCitations
)

const baseInstructions = `Use the following pieces of context to answer the question at the end.
If you don't know the answer, just say that you don't know, don't try to make up an answer.`

const citationInstructions = `Please provide citations from the document where relevant.`

// maxHistoryTurns caps how many previous exchanges are replayed into the
// prompt context.
const maxHistoryTurns = 3

// ForCitations maps the request flag to its prebuilt template.
func ForCitations(requireCitations bool) Template {
	if requireCitations {
		return TemplateWithCitations
	}
	return TemplateBase
}

// Render produces the final prompt for the model.
func (t Template) Render(contextText, question string) string {
	var sb strings.Builder
	sb.WriteString(baseInstructions)
	if t == TemplateWithCitations {
		sb.WriteString("\n")
		sb.WriteString(citationInstructions)
	}
	sb.WriteString("\n\n")
	sb.WriteString(contextText)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\nAnswer:")
	return sb.String()
}

// BuildContext concatenates the retrieved chunk texts in retrieval order,
// prefixed by a rendering of the most recent conversation turns when the
// history is non-empty.
func BuildContext(chunkTexts []string, history []store.Turn) string {
	contextText := strings.Join(chunkTexts, "\n\n")
	if len(history) == 0 {
		return contextText
	}

	start := 0
	if len(history) > maxHistoryTurns {
		start = len(history) - maxHistoryTurns
	}

	var sb strings.Builder
	sb.WriteString("Previous conversation:\n")
	for _, turn := range history[start:] {
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n", turn.Query, turn.Answer)
	}
	sb.WriteString("\nCurrent context:\n")
	sb.WriteString(contextText)
	return sb.String()
}
