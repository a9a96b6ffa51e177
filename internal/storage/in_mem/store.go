package in_mem

import (
	"context"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
)

// Store keeps articles in process memory. Used by tests and local runs
// without a database.
type Store struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]domain.Article
}

func NewStore() *Store {
	return &Store{
		articles: make(map[uuid.UUID]domain.Article),
	}
}

func (s *Store) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.URL == url {
			found := a
			return &found, nil
		}
	}
	return nil, apperr.NewNotFound("Article not found")
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, apperr.NewNotFound("Article not found")
	}
	return &a, nil
}

func (s *Store) Insert(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	s.articles[article.ID] = article
	return article.ID, nil
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]domain.Article, int64, error) {
	return s.page(s.sorted(), skip, limit)
}

func (s *Store) ListByAddress(ctx context.Context, dagAddress string, skip, limit int) ([]domain.Article, int64, error) {
	var matching []domain.Article
	for _, a := range s.sorted() {
		if a.DagAddress == dagAddress {
			matching = append(matching, a)
		}
	}
	return s.page(matching, skip, limit)
}

// sorted snapshots the map in minted-at order so pages are stable.
func (s *Store) sorted() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].MintedAt.Equal(all[j].MintedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].MintedAt.Before(all[j].MintedAt)
	})
	return all
}

func (s *Store) page(all []domain.Article, skip, limit int) ([]domain.Article, int64, error) {
	total := int64(len(all))

	if skip >= len(all) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}
