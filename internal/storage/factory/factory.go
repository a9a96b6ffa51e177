package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-minter/internal/storage"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/es"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/news-minter/pkg/server"
)

// NewStore builds the configured store backend together with its health
// checker and a release function. The store handle is constructed here once
// and injected into everything that needs it; the caller invokes the release
// function on shutdown to drop whatever connections the backend holds.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, pkgserver.HealthChecker, func(), error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStoreFromPool(pool), pg.NewHealthChecker(pool), pool.Close, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create Elasticsearch store: %w", err)
		}

		return store, pkgserver.NewOkHealthChecker(), func() {}, nil

	case storage.InMem:
		return in_mem.NewStore(), pkgserver.NewOkHealthChecker(), func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStore), cfg.Type)
	}
}
