package crawler

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageMeta is the best-effort scrape of <meta> tags readability does not
// cover: author lists, keyword lists and embedded media.
type pageMeta struct {
	Authors  []string
	Keywords []string
	Videos   []string
	Image    string
}

func scrapeMeta(r io.Reader) pageMeta {
	var meta pageMeta

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		// Meta extraction is optional; readability already succeeded.
		return meta
	}

	doc.Find(`meta[name="author"], meta[property="article:author"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			meta.Authors = appendUnique(meta.Authors, strings.TrimSpace(content))
		}
	})

	doc.Find(`meta[name="keywords"]`).Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		for _, kw := range strings.Split(content, ",") {
			meta.Keywords = appendUnique(meta.Keywords, strings.TrimSpace(kw))
		}
	})
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			meta.Keywords = appendUnique(meta.Keywords, strings.TrimSpace(content))
		}
	})

	doc.Find(`meta[property="og:video"], meta[property="og:video:url"], meta[property="og:video:secure_url"]`).
		Each(func(_ int, s *goquery.Selection) {
			if content, ok := s.Attr("content"); ok {
				meta.Videos = appendUnique(meta.Videos, strings.TrimSpace(content))
			}
		})
	doc.Find("video[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			meta.Videos = appendUnique(meta.Videos, strings.TrimSpace(src))
		}
	})

	if img, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		meta.Image = strings.TrimSpace(img)
	}

	return meta
}

func appendUnique(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
