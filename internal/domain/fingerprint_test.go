package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() Article {
	published := time.Date(2024, 9, 4, 12, 30, 0, 0, time.UTC)
	return Article{
		ID:            uuid.New(),
		Title:         "Starliner returns without crew",
		Content:       "Boeing and NASA prepare to bring Starliner home.",
		Authors:       "Jane Doe, John Roe",
		PublishedDate: published,
		URL:           "https://techcrunch.com/2024/09/04/starliner/",
		Source:        "techcrunch.com",
		TopImage:      "https://techcrunch.com/img.jpg",
		Videos:        []string{"https://techcrunch.com/vid.mp4"},
		Keywords:      []string{"nasa", "boeing"},
		Summary:       "Starliner comes home empty.",
		DagAddress:    "DAG38E4KCMhidUv8SvovzuJXKsZZ9Ldn58xA6rYz",
		MintedAt:      time.Now(),
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := sampleArticle()
	b := sampleArticle()

	// Identity and ingestion-time fields must not influence the hash.
	b.ID = uuid.New()
	b.MintedAt = a.MintedAt.Add(48 * time.Hour)
	b.Hash = "stale"

	ha, err := Fingerprint(a)
	require.NoError(t, err)
	hb, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64)
	assert.Equal(t, strings.ToLower(ha), ha)
}

func TestFingerprint_DifferentTimezoneSameInstant(t *testing.T) {
	a := sampleArticle()
	b := sampleArticle()

	cet := time.FixedZone("CET", 60*60)
	b.PublishedDate = a.PublishedDate.In(cet)

	ha, err := Fingerprint(a)
	require.NoError(t, err)
	hb, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}

func TestFingerprint_NilAndEmptySlicesEqual(t *testing.T) {
	a := sampleArticle()
	b := sampleArticle()
	a.Videos = nil
	a.Keywords = nil
	b.Videos = []string{}
	b.Keywords = []string{}

	ha, err := Fingerprint(a)
	require.NoError(t, err)
	hb, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}

func TestFingerprint_SensitiveToEveryHashedField(t *testing.T) {
	base := sampleArticle()
	baseHash, err := Fingerprint(base)
	require.NoError(t, err)

	mutations := map[string]func(*Article){
		"title":         func(a *Article) { a.Title = "changed" },
		"content":       func(a *Article) { a.Content = "changed" },
		"authors":       func(a *Article) { a.Authors = "changed" },
		"publishedDate": func(a *Article) { a.PublishedDate = a.PublishedDate.Add(time.Second) },
		"url":           func(a *Article) { a.URL = "https://example.com/changed" },
		"source":        func(a *Article) { a.Source = "example.com" },
		"topImage":      func(a *Article) { a.TopImage = "https://example.com/changed.jpg" },
		"videos":        func(a *Article) { a.Videos = append(a.Videos, "https://example.com/v2.mp4") },
		"keywords":      func(a *Article) { a.Keywords = []string{"changed"} },
		"summary":       func(a *Article) { a.Summary = "changed" },
		"dagAddress":    func(a *Article) { a.DagAddress = "DAGchanged" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			mutated := sampleArticle()
			mutate(&mutated)

			h, err := Fingerprint(mutated)
			require.NoError(t, err)
			assert.NotEqual(t, baseHash, h, "changing %s should change the fingerprint", field)
		})
	}
}
