package response

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// bookArraySchemaJSON describes the reply: an array whose first element is a
// book record. Scalar fields are free-form; numbers and booleans are tolerated.
// null is accepted for every field except Title and Author.
const bookArraySchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "prefixItems": [{"$ref": "#/$defs/record"}],
  "$defs": {
    "text": {"type": ["string", "number", "boolean", "null"]},
    "similar": {
      "type": "object",
      "properties": {
        "Title": {"$ref": "#/$defs/text"},
        "Author": {"$ref": "#/$defs/text"},
        "Reason for Similarity": {"$ref": "#/$defs/text"}
      }
    },
    "record": {
      "type": "object",
      "required": ["Title", "Author"],
      "properties": {
        "Title": {"$ref": "#/$defs/text"},
        "Author": {"$ref": "#/$defs/text"},
        "Publisher": {"$ref": "#/$defs/text"},
        "Publication Year": {"$ref": "#/$defs/text"},
        "Details": {
          "type": ["object", "null"],
          "properties": {
            "format": {"$ref": "#/$defs/text"},
            "ISBN": {"$ref": "#/$defs/text"},
            "pages": {"$ref": "#/$defs/text"},
            "language": {"$ref": "#/$defs/text"}
          }
        },
        "Genre": {"$ref": "#/$defs/text"},
        "Summary": {"$ref": "#/$defs/text"},
        "Reviews": {"$ref": "#/$defs/text"},
        "Rating": {"$ref": "#/$defs/text"},
        "Target Audience": {"$ref": "#/$defs/text"},
        "Similar Books": {"type": ["array", "null"], "items": {"$ref": "#/$defs/similar"}}
      }
    }
  }
}`

// bookArraySchemaURL is absolute so validation errors never name a local path
const bookArraySchemaURL = "mem://bibliomate/book-record.json"

var bookArraySchema = jsonschema.MustCompileString(bookArraySchemaURL, bookArraySchemaJSON)
