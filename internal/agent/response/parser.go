package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bibliomate/internal/model"
)

var (
	// ErrEmpty is returned when the reply has no text at all
	ErrEmpty = errors.New("empty reply")
	// ErrMalformed is returned when the cleaned reply is not valid JSON
	ErrMalformed = errors.New("reply is not valid JSON")
	// ErrShape is returned when the JSON does not match the book record schema
	ErrShape = errors.New("reply does not match the book record schema")
)

var (
	leadingFenceRegex  = regexp.MustCompile("^\\s*```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?")
	trailingFenceRegex = regexp.MustCompile("\\r?\\n?\\s*```\\s*$")
)

// StripCodeFences removes a leading ``` fence (with an optional language tag)
// and a trailing ``` fence, then trims surrounding whitespace.
func StripCodeFences(text string) string {
	result := leadingFenceRegex.ReplaceAllString(text, "")
	result = trailingFenceRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Parse cleans the reply and decodes the first book record of the JSON array.
// Elements after the first are ignored.
func Parse(text string) (*model.BookRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}

	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no content inside code fence", ErrMalformed)
	}

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := bookArraySchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}

	var record model.BookRecord
	if err := json.Unmarshal(items[0], &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return &record, nil
}
