package prompt

import (
	"fmt"

	"bibliomate/internal/agent/deps"
	"bibliomate/internal/agent/sanitize"
)

// Builder constructs prompts for the analyzer
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildBookPrompt creates the analysis request for a title.
// The output is deterministic for a given title.
func (b *Builder) BuildBookPrompt(title string) string {
	return fmt.Sprintf(BookPromptTemplate, sanitize.Title(title))
}

// Exemplar returns the fixed question/answer pair sent before the real prompt.
// A fresh slice is returned on every call.
func (b *Builder) Exemplar() []deps.Turn {
	return []deps.Turn{
		{Role: "user", Text: ExemplarQuestion},
		{Role: "model", Text: ExemplarAnswer},
	}
}
