package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
)

// Store is the persistence surface of the ingestion pipeline and the read
// API. Absence is reported as *apperr.NotFoundError; infrastructure
// failures as *apperr.StorageError. Implementations do not enforce URL
// uniqueness; the pipeline's check-then-insert does.
type Store interface {
	// FindByURL returns the record with an exact URL match.
	FindByURL(ctx context.Context, url string) (*domain.Article, error)
	// FindByID returns the record with the given identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// Insert persists a fully constructed record and returns its id.
	Insert(ctx context.Context, article domain.Article) (uuid.UUID, error)
	// List returns one page of records in store-defined order plus the
	// total count. An empty page is not an error.
	List(ctx context.Context, skip, limit int) ([]domain.Article, int64, error)
	// ListByAddress is List filtered to records with the given dagAddress.
	ListByAddress(ctx context.Context, dagAddress string, skip, limit int) ([]domain.Article, int64, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported store type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}
