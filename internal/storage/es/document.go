package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
)

// Document is the article layout stored in the Elasticsearch index.
type Document struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Authors       string    `json:"authors"`
	PublishedDate time.Time `json:"published_date"`
	URL           string    `json:"url"`
	Source        string    `json:"source"`
	TopImage      string    `json:"top_image"`
	Videos        []string  `json:"videos"`
	Keywords      []string  `json:"keywords"`
	Summary       string    `json:"summary"`
	DagAddress    string    `json:"dag_address"`
	Hash          string    `json:"hash"`
	MintedAt      time.Time `json:"minted_at"`
}

func toDocument(a domain.Article) Document {
	return Document{
		ID:            a.ID.String(),
		Title:         a.Title,
		Content:       a.Content,
		Authors:       a.Authors,
		PublishedDate: a.PublishedDate,
		URL:           a.URL,
		Source:        a.Source,
		TopImage:      a.TopImage,
		Videos:        a.Videos,
		Keywords:      a.Keywords,
		Summary:       a.Summary,
		DagAddress:    a.DagAddress,
		Hash:          a.Hash,
		MintedAt:      a.MintedAt,
	}
}

func (d Document) toArticle() (domain.Article, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to parse article ID %q: %w", d.ID, err)
	}

	return domain.Article{
		ID:            id,
		Title:         d.Title,
		Content:       d.Content,
		Authors:       d.Authors,
		PublishedDate: d.PublishedDate,
		URL:           d.URL,
		Source:        d.Source,
		TopImage:      d.TopImage,
		Videos:        d.Videos,
		Keywords:      d.Keywords,
		Summary:       d.Summary,
		DagAddress:    d.DagAddress,
		Hash:          d.Hash,
		MintedAt:      d.MintedAt,
	}, nil
}
