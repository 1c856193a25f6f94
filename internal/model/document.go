package model

import "time"

// Document status values.
const (
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Document is a stored court ruling with its extracted metadata.
type Document struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Text        string    `json:"text_content,omitempty"`
	Metadata    Metadata  `json:"metadata"`
	ProcessedAt time.Time `json:"processed_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Valid       bool      `json:"valid"`
}

// Chunk is a piece of document text sent to the embedding collaborator.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Seq        int    `json:"seq"`
	Text       string `json:"text"`
}

// SearchHit is a similarity-search result.
type SearchHit struct {
	Document Document `json:"document"`
	Chunk    *Chunk   `json:"chunk,omitempty"`
	Score    float64  `json:"similarity_score"`
}
