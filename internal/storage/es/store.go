package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	store := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := store.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return store, nil
}

func (s *Store) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"url": {Value: url},
			},
		}).
		Size(1).
		Do(ctx)
	if err != nil {
		return nil, apperr.NewStorage("retrieve news article", err)
	}

	if len(res.Hits.Hits) == 0 {
		return nil, apperr.NewNotFound("Article not found")
	}

	return hitToArticle(res.Hits.Hits[0].Source_)
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, apperr.NewStorage("retrieve news article", err)
	}

	if !res.Found {
		return nil, apperr.NewNotFound("Article not found")
	}

	return hitToArticle(res.Source_)
}

func (s *Store) Insert(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	doc := toDocument(article)

	res, err := s.client.Index(s.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, apperr.NewStorage("store news article", err)
	}

	slog.Info("Document indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return article.ID, nil
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]domain.Article, int64, error) {
	return s.search(ctx, nil, skip, limit)
}

func (s *Store) ListByAddress(ctx context.Context, dagAddress string, skip, limit int) ([]domain.Article, int64, error) {
	query := &types.Query{
		Term: map[string]types.TermQuery{
			"dag_address": {Value: dagAddress},
		},
	}
	return s.search(ctx, query, skip, limit)
}

func (s *Store) search(ctx context.Context, query *types.Query, skip, limit int) ([]domain.Article, int64, error) {
	if query == nil {
		query = &types.Query{MatchAll: &types.MatchAllQuery{}}
	}

	sortAsc := sortorder.Asc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(query).
		From(skip).
		Size(limit).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"minted_at": {Order: &sortAsc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortAsc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, 0, apperr.NewStorage("retrieve news articles", err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		article, err := hitToArticle(hit.Source_)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *article)
	}

	return articles, res.Hits.Total.Value, nil
}

func hitToArticle(source json.RawMessage) (*domain.Article, error) {
	var doc Document
	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, apperr.NewStorage("retrieve news article", fmt.Errorf("failed to unmarshal document: %w", err))
	}

	article, err := doc.toArticle()
	if err != nil {
		return nil, apperr.NewStorage("retrieve news article", err)
	}
	return &article, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	existsRes, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":             types.NewKeywordProperty(),
			"title":          types.NewTextProperty(),
			"content":        types.NewTextProperty(),
			"authors":        types.NewTextProperty(),
			"published_date": types.NewDateProperty(),
			"url":            types.NewKeywordProperty(),
			"source":         types.NewKeywordProperty(),
			"top_image":      types.NewKeywordProperty(),
			"videos":         types.NewKeywordProperty(),
			"keywords":       types.NewKeywordProperty(),
			"summary":        types.NewTextProperty(),
			"dag_address":    types.NewKeywordProperty(),
			"hash":           types.NewKeywordProperty(),
			"minted_at":      types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}
