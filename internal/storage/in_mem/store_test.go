package in_mem

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, n int, dagAddress string) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		id, err := s.Insert(context.Background(), domain.Article{
			ID:         uuid.New(),
			Title:      fmt.Sprintf("article %d", i),
			URL:        fmt.Sprintf("https://example.com/%s/%d", dagAddress, i),
			DagAddress: dagAddress,
			MintedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestStore_FindByURL(t *testing.T) {
	s := NewStore()
	seed(t, s, 3, "DAGa")

	got, err := s.FindByURL(context.Background(), "https://example.com/DAGa/1")
	require.NoError(t, err)
	assert.Equal(t, "article 1", got.Title)

	_, err = s.FindByURL(context.Background(), "https://example.com/unknown")
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestStore_FindByID(t *testing.T) {
	s := NewStore()
	ids := seed(t, s, 1, "DAGa")

	got, err := s.FindByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)

	_, err = s.FindByID(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestStore_List_Pagination(t *testing.T) {
	s := NewStore()
	seed(t, s, 25, "DAGa")

	items, total, err := s.List(context.Background(), 20, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 5)
	// minted-at ordering makes pages stable
	assert.Equal(t, "article 20", items[0].Title)

	items, total, err = s.List(context.Background(), 100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, items)
}

func TestStore_ListByAddress(t *testing.T) {
	s := NewStore()
	seed(t, s, 3, "DAGa")
	seed(t, s, 2, "DAGb")

	items, total, err := s.ListByAddress(context.Background(), "DAGb", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	for _, a := range items {
		assert.Equal(t, "DAGb", a.DagAddress)
	}

	items, total, err = s.ListByAddress(context.Background(), "DAGc", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
