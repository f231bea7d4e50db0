package response

import (
	"testing"

	"bibliomate/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duneJSON = `[{"Title":"Dune","Author":"Frank Herbert","Publisher":"Chilton Books","Publication Year":"1965",` +
	`"Details":{"format":"Hardcover","ISBN":"978-0441013593","pages":"412","language":"English"},` +
	`"Genre":"Science Fiction","Summary":"Desert planet politics.","Reviews":"Acclaimed.","Rating":"4.6/5",` +
	`"Target Audience":"Adults","Similar Books":[{"Title":"A","Author":"B"},{"Title":"C","Author":"D"}]}]`

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json fence", input: "```json\n[1]\n```", want: "[1]"},
		{name: "bare fence", input: "```\n[1]\n```", want: "[1]"},
		{name: "no fence", input: "  [1]  ", want: "[1]"},
		{name: "single line", input: "```json[1]```", want: "[1]"},
		{name: "crlf", input: "```json\r\n[1]\r\n```\r\n", want: "[1]"},
		{name: "surrounding whitespace", input: "\n  ```JSON \n{\"a\":1}\n```  \n", want: "{\"a\":1}"},
		{name: "inner backticks kept", input: "```json\n[\"a ``` b\"]\n```", want: "[\"a ``` b\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.input))
		})
	}
}

func TestParseFencedMatchesUnfenced(t *testing.T) {
	plain, err := Parse(duneJSON)
	require.NoError(t, err)

	fenced, err := Parse("```json\n" + duneJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
	assert.Equal(t, "Dune", plain.Title.String())
	assert.Equal(t, "Frank Herbert", plain.Author.String())
	assert.Equal(t, "1965", plain.PublicationYear.String())
	assert.Equal(t, "978-0441013593", plain.Details.ISBN.String())
	require.Len(t, plain.SimilarBooks, 2)
	assert.Equal(t, "A", plain.SimilarBooks[0].Title.String())
	assert.Equal(t, "D", plain.SimilarBooks[1].Author.String())
}

func TestParseUsesFirstElementOnly(t *testing.T) {
	reply := `[{"Title":"First","Author":"One"},{"Title":{"nested":true}}]`

	record, err := Parse(reply)
	require.NoError(t, err)
	assert.Equal(t, "First", record.Title.String())
}

func TestParseKeepsNumbersAsText(t *testing.T) {
	reply := `[{"Title":"Dune","Author":"Frank Herbert","Publication Year":1965,"Details":{"pages":412}}]`

	record, err := Parse(reply)
	require.NoError(t, err)
	assert.Equal(t, "1965", record.PublicationYear.String())
	assert.Equal(t, "412", record.Details.Pages.String())
}

func TestParseAcceptsNullFields(t *testing.T) {
	reply := `[{"Title":"Dune","Author":"Frank Herbert","Publisher":null,"Details":null,"Similar Books":null}]`

	record, err := Parse(reply)
	require.NoError(t, err)
	assert.Equal(t, "Dune", record.Title.String())
	assert.Empty(t, record.Publisher.String())
	assert.Equal(t, model.BookDetails{}, record.Details)
	assert.Empty(t, record.SimilarBooks)
}

func TestParseShapeErrorHasNoLocalPath(t *testing.T) {
	_, err := Parse(`[{"Title":"Dune"}]`)
	require.ErrorIs(t, err, ErrShape)
	assert.NotContains(t, err.Error(), "file://")
	assert.Contains(t, err.Error(), bookArraySchemaURL)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "whitespace", input: " \n\t", wantErr: ErrEmpty},
		{name: "empty fence", input: "```json\n```", wantErr: ErrMalformed},
		{name: "prose", input: "Sorry, I don't know that book.", wantErr: ErrMalformed},
		{name: "truncated", input: `[{"Title":"Dune"`, wantErr: ErrMalformed},
		{name: "object not array", input: `{"Title":"Dune","Author":"Frank Herbert"}`, wantErr: ErrShape},
		{name: "empty array", input: `[]`, wantErr: ErrShape},
		{name: "missing author", input: `[{"Title":"Dune"}]`, wantErr: ErrShape},
		{name: "details not object", input: `[{"Title":"Dune","Author":"F","Details":"x"}]`, wantErr: ErrShape},
		{name: "similar not array", input: `[{"Title":"Dune","Author":"F","Similar Books":"x"}]`, wantErr: ErrShape},
		{name: "array of strings", input: `["Dune"]`, wantErr: ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Parse(tt.input)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
