package model

import (
	"bytes"
	"encoding/json"
)

// Text is a free-form string supplied by the model. Numbers and booleans are
// accepted and kept as their literal JSON text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	if bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	*t = Text(trimmed)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// BookRecord is one analyzed book as returned by the model.
// JSON keys follow the reply format the prompt asks for.
type BookRecord struct {
	Title           Text          `json:"Title"`
	Author          Text          `json:"Author"`
	Publisher       Text          `json:"Publisher"`
	PublicationYear Text          `json:"Publication Year"`
	Details         BookDetails   `json:"Details"`
	Genre           Text          `json:"Genre"`
	Summary         Text          `json:"Summary"`
	Reviews         Text          `json:"Reviews"`
	Rating          Text          `json:"Rating"`
	TargetAudience  Text          `json:"Target Audience"`
	SimilarBooks    []SimilarBook `json:"Similar Books"`
}

type BookDetails struct {
	Format   Text `json:"format"`
	ISBN     Text `json:"ISBN"`
	Pages    Text `json:"pages"`
	Language Text `json:"language"`
}

type SimilarBook struct {
	Title  Text `json:"Title"`
	Author Text `json:"Author"`
	Reason Text `json:"Reason for Similarity,omitempty"`
}

// BookResponse is the API representation of a BookRecord
type BookResponse struct {
	Title           string                `json:"title"`
	Author          string                `json:"author"`
	Publisher       string                `json:"publisher"`
	PublicationYear string                `json:"publication_year"`
	Details         BookDetailsResponse   `json:"details"`
	Genre           string                `json:"genre"`
	Summary         string                `json:"summary"`
	Reviews         string                `json:"reviews"`
	Rating          string                `json:"rating"`
	TargetAudience  string                `json:"target_audience"`
	SimilarBooks    []SimilarBookResponse `json:"similar_books"`
}

type BookDetailsResponse struct {
	Format   string `json:"format"`
	ISBN     string `json:"isbn"`
	Pages    string `json:"pages"`
	Language string `json:"language"`
}

type SimilarBookResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason,omitempty"`
}

func (b *BookRecord) ToResponse() BookResponse {
	similar := make([]SimilarBookResponse, 0, len(b.SimilarBooks))
	for _, s := range b.SimilarBooks {
		similar = append(similar, SimilarBookResponse{
			Title:  string(s.Title),
			Author: string(s.Author),
			Reason: string(s.Reason),
		})
	}
	return BookResponse{
		Title:           string(b.Title),
		Author:          string(b.Author),
		Publisher:       string(b.Publisher),
		PublicationYear: string(b.PublicationYear),
		Details: BookDetailsResponse{
			Format:   string(b.Details.Format),
			ISBN:     string(b.Details.ISBN),
			Pages:    string(b.Details.Pages),
			Language: string(b.Details.Language),
		},
		Genre:          string(b.Genre),
		Summary:        string(b.Summary),
		Reviews:        string(b.Reviews),
		Rating:         string(b.Rating),
		TargetAudience: string(b.TargetAudience),
		SimilarBooks:   similar,
	}
}
