package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
)

func TestNewNotCrawlable(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := apperr.NewNotCrawlable("https://example.com/a", inner)

	if err.Error() != "news is not crawlable: connection refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNewStorage(t *testing.T) {
	inner := fmt.Errorf("dial tcp: refused")
	err := apperr.NewStorage("store news article", inner)

	if err.Error() != "storage failure during store news article: dial tcp: refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNewNotFound(t *testing.T) {
	err := apperr.NewNotFound("Article not found")

	if err.Error() != "Article not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestTypedErrors_SurviveFmtWrapping(t *testing.T) {
	original := apperr.NewNotCrawlable("https://example.com", nil)

	wrapped := fmt.Errorf("submit failed: %w", original)
	doubleWrapped := fmt.Errorf("request error: %w", wrapped)

	var nc *apperr.NotCrawlableError
	if !errors.As(doubleWrapped, &nc) {
		t.Fatal("errors.As should find NotCrawlableError through double wrapping")
	}
	if nc.URL != "https://example.com" {
		t.Errorf("expected URL to survive wrapping, got %q", nc.URL)
	}
}

func TestTypedErrors_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var se *apperr.StorageError
	if errors.As(wrapped, &se) {
		t.Fatal("errors.As should NOT find StorageError in plain error chain")
	}
}
