package crawler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// AbsenceReason classifies why a page yielded no article. Reasons are
// logged for operability; callers collapse all of them into one
// not-crawlable outcome.
type AbsenceReason string

const (
	ReasonFetchFailed   AbsenceReason = "fetch failed"
	ReasonEmptyDocument AbsenceReason = "empty document"
	ReasonUnparseable   AbsenceReason = "unparseable"
)

// NotExtractedError carries the typed absence of an extraction result.
type NotExtractedError struct {
	URL    string
	Reason AbsenceReason
	Err    error
}

func (e *NotExtractedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s) for %s: %v", e.Reason, e.URL, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s) for %s", e.Reason, e.URL)
}

func (e *NotExtractedError) Unwrap() error {
	return e.Err
}

// Extraction holds the normalized article fields pulled from a page.
type Extraction struct {
	Title         string
	Content       string
	Authors       []string
	PublishedDate time.Time
	TopImage      string
	Videos        []string
	Keywords      []string
	Summary       string
}

// Extractor is the page-fetch-and-parse capability consumed by the
// submission pipeline.
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*Extraction, error)
}

// Crawler fetches a page once and parses it with readability plus a meta
// tag scrape. No retries; the only timeout is the HTTP client's own.
type Crawler struct {
	client    *http.Client
	userAgent string
	maxBody   int64
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

func New(cfg Config) *Crawler {
	cfg.applyDefaults()

	return &Crawler{
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodyBytes,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

func (c *Crawler) Extract(ctx context.Context, pageURL string) (*Extraction, error) {
	slog.Info("Starting to crawl URL", "url", pageURL)

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, &NotExtractedError{URL: pageURL, Reason: ReasonUnparseable, Err: err}
	}

	body, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, &NotExtractedError{URL: pageURL, Reason: ReasonFetchFailed, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &NotExtractedError{URL: pageURL, Reason: ReasonEmptyDocument}
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, &NotExtractedError{URL: pageURL, Reason: ReasonUnparseable, Err: err}
	}

	slog.Info("Successfully downloaded and parsed the article", "url", pageURL)

	meta := scrapeMeta(bytes.NewReader(body))

	extraction := c.normalize(article, meta)

	slog.Info("Successfully extracted all fields",
		"title", extraction.Title,
		"authors", strings.Join(extraction.Authors, ", "),
		"publishedDate", extraction.PublishedDate,
		"contentLength", len(extraction.Content),
	)

	return extraction, nil
}

func (c *Crawler) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// normalize maps parser output onto the extraction contract: title,
// content and authors receive defaults downstream; here empty stays empty
// except the publish date, which falls back to the crawl time.
func (c *Crawler) normalize(article readability.Article, meta pageMeta) *Extraction {
	title := strings.TrimSpace(article.Title)

	content := strings.TrimSpace(article.TextContent)

	authors := meta.Authors
	if len(authors) == 0 && strings.TrimSpace(article.Byline) != "" {
		authors = []string{strings.TrimSpace(article.Byline)}
	}

	publishedDate := c.now()
	if article.PublishedTime != nil {
		publishedDate = *article.PublishedTime
	}

	topImage := article.Image
	if topImage == "" {
		topImage = meta.Image
	}

	summary := strings.TrimSpace(c.sanitizer.Sanitize(article.Excerpt))

	return &Extraction{
		Title:         title,
		Content:       content,
		Authors:       authors,
		PublishedDate: publishedDate,
		TopImage:      topImage,
		Videos:        meta.Videos,
		Keywords:      meta.Keywords,
		Summary:       summary,
	}
}
