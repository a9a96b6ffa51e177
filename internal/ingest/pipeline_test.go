package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/crawler"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/in_mem"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDagAddress = "DAG38E4KCMhidUv8SvovzuJXKsZZ9Ldn58xA6rYz"

type stubExtractor struct {
	extraction *crawler.Extraction
	err        error
	calls      int
}

func (s *stubExtractor) Extract(ctx context.Context, pageURL string) (*crawler.Extraction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.extraction, nil
}

func fullExtraction() *crawler.Extraction {
	return &crawler.Extraction{
		Title:         "Starliner returns",
		Content:       "Body text about the uncrewed return.",
		Authors:       []string{"Jane Doe", "John Roe"},
		PublishedDate: time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC),
		TopImage:      "https://cdn.example.com/starliner.jpg",
		Videos:        []string{"https://cdn.example.com/starliner.mp4"},
		Keywords:      []string{"nasa", "boeing"},
		Summary:       "Starliner comes home empty.",
	}
}

func TestPipeline_Submit_StoresNewArticle(t *testing.T) {
	store := in_mem.NewStore()
	extractor := &stubExtractor{extraction: fullExtraction()}
	p := NewPipeline(store, extractor)

	url := "https://techcrunch.com/2024/09/04/starliner/"
	res, err := p.Submit(context.Background(), url, testDagAddress)
	require.NoError(t, err)
	assert.False(t, res.AlreadyExists)
	require.NotNil(t, res.Article)

	stored, err := store.FindByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Starliner returns", stored.Title)
	assert.Equal(t, "Jane Doe, John Roe", stored.Authors)
	assert.Equal(t, "techcrunch.com", stored.Source)
	assert.Equal(t, testDagAddress, stored.DagAddress)
	assert.False(t, stored.MintedAt.IsZero())
	assert.Len(t, stored.Hash, 64)

	// The stored hash is exactly the fingerprint of the stored fields.
	want, err := domain.Fingerprint(*stored)
	require.NoError(t, err)
	assert.Equal(t, want, stored.Hash)
}

func TestPipeline_Submit_DedupIdempotence(t *testing.T) {
	store := in_mem.NewStore()
	extractor := &stubExtractor{extraction: fullExtraction()}
	p := NewPipeline(store, extractor)

	url := "https://techcrunch.com/2024/09/04/starliner/"
	first, err := p.Submit(context.Background(), url, testDagAddress)
	require.NoError(t, err)
	second, err := p.Submit(context.Background(), url, testDagAddress)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.AlreadyExists)
	assert.Equal(t, 1, extractor.calls, "existing URL must not be re-fetched")

	_, total, err := store.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "exactly one record stored")
}

func TestPipeline_Submit_RejectedWhenNotExtractable(t *testing.T) {
	store := in_mem.NewStore()
	extractor := &stubExtractor{err: &crawler.NotExtractedError{
		URL:    "https://example.com/broken",
		Reason: crawler.ReasonFetchFailed,
	}}
	p := NewPipeline(store, extractor)

	res, err := p.Submit(context.Background(), "https://example.com/broken", testDagAddress)

	assert.Nil(t, res)
	var nc *apperr.NotCrawlableError
	require.True(t, errors.As(err, &nc))

	_, total, listErr := store.List(context.Background(), 0, 10)
	require.NoError(t, listErr)
	assert.Zero(t, total, "nothing may be persisted on rejection")
}

func TestPipeline_Submit_DefaultFieldPopulation(t *testing.T) {
	store := in_mem.NewStore()
	extractor := &stubExtractor{extraction: &crawler.Extraction{
		PublishedDate: time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC),
	}}
	p := NewPipeline(store, extractor)

	res, err := p.Submit(context.Background(), "https://example.com/empty", testDagAddress)
	require.NoError(t, err)

	stored, err := store.FindByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Title", stored.Title)
	assert.Equal(t, "No content found", stored.Content)
	assert.Equal(t, "Unknown", stored.Authors)
	require.NotNil(t, stored.Videos, "missing media must become an empty list")
	require.NotNil(t, stored.Keywords, "missing keywords must become an empty list")
	assert.Empty(t, stored.Videos)
	assert.Empty(t, stored.Keywords)
}

func TestPipeline_Submit_EmptyDagAddressRejected(t *testing.T) {
	store := in_mem.NewStore()
	extractor := &stubExtractor{extraction: fullExtraction()}
	p := NewPipeline(store, extractor)

	_, err := p.Submit(context.Background(), "https://example.com/a", "   ")

	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Zero(t, extractor.calls)
}

func TestPipeline_Submit_HashIgnoresMintedAtAndID(t *testing.T) {
	extraction := fullExtraction()

	timestamps := []time.Time{
		time.Date(2024, 9, 5, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	var hashes []string
	for _, ts := range timestamps {
		store := in_mem.NewStore()
		p := NewPipeline(store, &stubExtractor{extraction: extraction})
		p.now = func() time.Time { return ts }
		p.newID = uuid.New

		res, err := p.Submit(context.Background(), "https://example.com/same", testDagAddress)
		require.NoError(t, err)
		hashes = append(hashes, res.Article.Hash)
	}

	assert.Equal(t, hashes[0], hashes[1])
}
