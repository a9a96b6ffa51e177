package ingest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/crawler"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/DjordjeVuckovic/news-minter/internal/storage"
	"github.com/google/uuid"
)

// SubmitResult reports the outcome of a submission: either the id of an
// already-stored record or the freshly minted one.
type SubmitResult struct {
	ID            uuid.UUID
	AlreadyExists bool
	Article       *domain.Article
}

// Pipeline runs the check-then-extract-then-insert submission flow.
// The existence check and the insert are two separate store calls; two
// concurrent first submissions of the same URL can both insert; the url
// column is deliberately not unique so both rows survive.
type Pipeline struct {
	store     storage.Store
	extractor crawler.Extractor
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewPipeline(store storage.Store, extractor crawler.Extractor) *Pipeline {
	return &Pipeline{
		store:     store,
		extractor: extractor,
		now:       time.Now,
		newID:     uuid.New,
	}
}

func (p *Pipeline) Submit(ctx context.Context, url, dagAddress string) (*SubmitResult, error) {
	if strings.TrimSpace(dagAddress) == "" {
		return nil, apperr.NewValidation("dagAddress is required")
	}

	existing, err := p.store.FindByURL(ctx, url)
	if err == nil {
		slog.Info("Article with URL already exists in the database", "url", url, "id", existing.ID)
		return &SubmitResult{ID: existing.ID, AlreadyExists: true}, nil
	}
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	extraction, err := p.extractor.Extract(ctx, url)
	if err != nil {
		return nil, apperr.NewNotCrawlable(url, err)
	}

	article := p.buildArticle(url, dagAddress, extraction)

	hash, err := domain.Fingerprint(article)
	if err != nil {
		return nil, err
	}
	article.Hash = hash

	id, err := p.store.Insert(ctx, article)
	if err != nil {
		return nil, err
	}

	slog.Info("Successfully stored news article", "id", id, "url", url, "dagAddress", dagAddress)
	return &SubmitResult{ID: id, Article: &article}, nil
}

// buildArticle assembles the full record from extraction output, applying
// the documented defaults for empty fields. The hash is set afterwards by
// the caller, once every other field is known.
func (p *Pipeline) buildArticle(url, dagAddress string, e *crawler.Extraction) domain.Article {
	title := e.Title
	if title == "" {
		title = domain.DefaultTitle
	}

	content := e.Content
	if content == "" {
		content = domain.DefaultContent
	}

	authors := strings.Join(e.Authors, ", ")
	if authors == "" {
		authors = domain.DefaultAuthors
	}

	// Empty media lists are stored as empty, never as NULL.
	videos := e.Videos
	if videos == nil {
		videos = []string{}
	}
	keywords := e.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return domain.Article{
		ID:            p.newID(),
		Title:         title,
		Content:       content,
		Authors:       authors,
		PublishedDate: e.PublishedDate,
		URL:           url,
		Source:        domain.SourceOf(url),
		TopImage:      e.TopImage,
		Videos:        videos,
		Keywords:      keywords,
		Summary:       e.Summary,
		DagAddress:    dagAddress,
		MintedAt:      p.now(),
	}
}
