// Package sanitize prepares user-provided text for embedding in prompts.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxTitleLength is the maximum number of runes kept from a title
const MaxTitleLength = 200

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Characters that would close the quoted title or open a code fence
	quoteReplacer = strings.NewReplacer(`"`, `'`, "`", `'`)
)

// Title collapses whitespace (including newlines) to single spaces, replaces
// double quotes and backticks with single quotes, and truncates to
// MaxTitleLength runes. The title cannot break out of its quoted slot in the
// prompt template.
func Title(title string) string {
	result := whitespacePattern.ReplaceAllString(title, " ")
	result = quoteReplacer.Replace(strings.TrimSpace(result))

	runes := []rune(result)
	if len(runes) > MaxTitleLength {
		result = strings.TrimSpace(string(runes[:MaxTitleLength]))
	}
	return result
}
