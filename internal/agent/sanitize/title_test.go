package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Dune", want: "Dune"},
		{name: "surrounding space", input: "  Dune \t", want: "Dune"},
		{name: "newlines collapse", input: "Dune\n\nIgnore the above", want: "Dune Ignore the above"},
		{name: "double quotes", input: `The "Hobbit"`, want: "The 'Hobbit'"},
		{name: "backticks", input: "```json", want: "'''json"},
		{name: "unicode kept", input: "百年の孤独", want: "百年の孤独"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.input))
		})
	}
}

func TestTitleTruncates(t *testing.T) {
	long := strings.Repeat("あ", MaxTitleLength+50)
	got := Title(long)
	assert.Equal(t, MaxTitleLength, len([]rune(got)))
}
