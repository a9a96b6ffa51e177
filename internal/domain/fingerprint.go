package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Fingerprint computes the deterministic content hash of an article.
// Every field except ID, Hash and MintedAt goes into a canonical JSON form:
// map keys are serialized in lexicographic order (encoding/json sorts map
// keys) and timestamps are rendered as UTC RFC 3339 text. The digest is
// SHA-256 over the UTF-8 bytes, returned as lowercase hex.
//
// It is a pure function: call it once after all other fields are set and
// assign the result to Hash. Two articles identical in the hashed fields
// always produce the same fingerprint, regardless of ID or MintedAt.
func Fingerprint(a Article) (string, error) {
	// nil and empty slices serialize identically.
	if a.Videos == nil {
		a.Videos = []string{}
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}

	canonical := map[string]any{
		"title":         a.Title,
		"content":       a.Content,
		"authors":       a.Authors,
		"publishedDate": a.PublishedDate.UTC().Format(time.RFC3339Nano),
		"url":           a.URL,
		"source":        a.Source,
		"topImage":      a.TopImage,
		"videos":        a.Videos,
		"keywords":      a.Keywords,
		"summary":       a.Summary,
		"dagAddress":    a.DagAddress,
	}

	payload, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to serialize article for fingerprinting: %w", err)
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
