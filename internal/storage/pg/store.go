package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-minter/internal/apperr"
	"github.com/DjordjeVuckovic/news-minter/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the store uses. Kept narrow so tests can
// substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Store struct {
	db DB
}

const articleColumns = `id, title, content, authors, published_date, url, source, top_image, videos, keywords, summary, dag_address, hash, minted_at`

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func NewStoreFromPool(pool *ConnectionPool) *Store {
	return &Store{db: pool.conn}
}

func (s *Store) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM news_articles WHERE url = $1 LIMIT 1`, articleColumns)
	return s.findOne(ctx, query, url)
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM news_articles WHERE id = $1`, articleColumns)
	return s.findOne(ctx, query, id)
}

func (s *Store) findOne(ctx context.Context, query string, arg any) (*domain.Article, error) {
	row := s.db.QueryRow(ctx, query, arg)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound("Article not found")
	}
	if err != nil {
		return nil, apperr.NewStorage("retrieve news article", err)
	}

	return article, nil
}

func (s *Store) Insert(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	// pgx encodes a nil []string as SQL NULL; videos/keywords are NOT NULL.
	if article.Videos == nil {
		article.Videos = []string{}
	}
	if article.Keywords == nil {
		article.Keywords = []string{}
	}

	cmd := `
        INSERT INTO news_articles (id, title, content, authors, published_date, url, source,
            top_image, videos, keywords, summary, dag_address, hash, minted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Content,
		article.Authors,
		article.PublishedDate,
		article.URL,
		article.Source,
		article.TopImage,
		article.Videos,
		article.Keywords,
		article.Summary,
		article.DagAddress,
		article.Hash,
		article.MintedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, apperr.NewStorage("store news article", err)
	}

	return id, nil
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]domain.Article, int64, error) {
	return s.listPage(ctx,
		`SELECT count(*) FROM news_articles`,
		fmt.Sprintf(`SELECT %s FROM news_articles ORDER BY minted_at, id OFFSET $1 LIMIT $2`, articleColumns),
		nil, skip, limit)
}

func (s *Store) ListByAddress(ctx context.Context, dagAddress string, skip, limit int) ([]domain.Article, int64, error) {
	return s.listPage(ctx,
		`SELECT count(*) FROM news_articles WHERE dag_address = $1`,
		fmt.Sprintf(`SELECT %s FROM news_articles WHERE dag_address = $1 ORDER BY minted_at, id OFFSET $2 LIMIT $3`, articleColumns),
		&dagAddress, skip, limit)
}

func (s *Store) listPage(ctx context.Context, countSQL, pageSQL string, dagAddress *string, skip, limit int) ([]domain.Article, int64, error) {
	countArgs := []any{}
	pageArgs := []any{skip, limit}
	if dagAddress != nil {
		countArgs = []any{*dagAddress}
		pageArgs = []any{*dagAddress, skip, limit}
	}

	var total int64
	if err := s.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, apperr.NewStorage("count news articles", err)
	}

	rows, err := s.db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, apperr.NewStorage("retrieve news articles", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, apperr.NewStorage("retrieve news articles", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.NewStorage("retrieve news articles", err)
	}

	return articles, total, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Authors,
		&a.PublishedDate,
		&a.URL,
		&a.Source,
		&a.TopImage,
		&a.Videos,
		&a.Keywords,
		&a.Summary,
		&a.DagAddress,
		&a.Hash,
		&a.MintedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
