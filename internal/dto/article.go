package dto

import (
	"time"

	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
)

type SubmitRequest struct {
	URL        string `json:"url"`
	DagAddress string `json:"dagAddress"`
}

type SubmitResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

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

func FromArticle(a domain.Article) Article {
	return Article{
		ID:            a.ID,
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

func FromArticles(articles []domain.Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromArticle(a))
	}
	return out
}
