package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when extraction yields nothing usable.
const (
	DefaultTitle   = "Unknown Title"
	DefaultContent = "No content found"
	DefaultAuthors = "Unknown"
)

// Article is the persisted unit of ingestion. A record is created exactly once
// at successful submission and never mutated afterwards.
type Article struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Authors       string    `json:"authors"`
	PublishedDate time.Time `json:"publishedDate"`
	URL           string    `json:"url"`
	Source        string    `json:"source"`
	TopImage      string    `json:"topImage,omitempty"`
	Videos        []string  `json:"videos"`
	Keywords      []string  `json:"keywords"`
	Summary       string    `json:"summary,omitempty"`
	DagAddress    string    `json:"dagAddress"`
	Hash          string    `json:"hash"`
	MintedAt      time.Time `json:"mintedAt"`
}
