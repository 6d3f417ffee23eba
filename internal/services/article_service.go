// Package services – ArticleService
//
// ArticleService runs the article use cases: the filtered collection read
// with its companion count, the single-article detail view, vote deltas,
// and article creation. Validation happens before the service is called;
// the service maps store results onto the error taxonomy.
//
// Observability: public methods open an OpenTelemetry span.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// ArticleService coordinates article reads and writes.
type ArticleService struct {
	DB *gorm.DB
}

// ArticlePage is one page of the collection plus the filtered total.
type ArticlePage struct {
	Articles   []domain.ArticleSummary
	TotalCount int64
}

// List runs the page query, the count, and (when filtering) the topic
// existence check concurrently. An unknown topic is reported as
// ErrTopicNotFound even though the page query itself would succeed empty.
func (s *ArticleService) List(ctx context.Context, q repo.ArticleQuery) (*ArticlePage, error) {
	tr := otel.Tracer("services/ArticleService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("topic", q.Topic),
			attribute.String("sort_by", q.SortBy),
			attribute.String("order", q.Order),
			attribute.Int("limit", q.Limit),
			attribute.Int("page", q.Page),
		),
	)
	defer span.End()

	page := &ArticlePage{}
	g, gctx := errgroup.WithContext(ctx)
	if q.Topic != "" {
		g.Go(func() error {
			return require(gctx, KindTopicNotFound, func(ctx context.Context) (bool, error) {
				return repo.TopicExists(ctx, s.DB, q.Topic)
			})
		})
	}
	g.Go(func() error {
		items, err := repo.ListArticles(gctx, s.DB, q)
		if err != nil {
			return translateStoreError(err)
		}
		page.Articles = items
		return nil
	})
	g.Go(func() error {
		n, err := repo.CountArticles(gctx, s.DB, q.Topic)
		if err != nil {
			return translateStoreError(err)
		}
		page.TotalCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return page, nil
}

// Get returns the detail view of one article.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.ArticleDetail, error) {
	tr := otel.Tracer("services/ArticleService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()

	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		return nil, notFoundAs(err, KindArticleNotFound)
	}
	return a, nil
}

// Vote adds delta to the article's votes and returns the updated row.
func (s *ArticleService) Vote(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	tr := otel.Tracer("services/ArticleService")
	ctx, span := tr.Start(ctx, "Vote",
		trace.WithAttributes(
			attribute.Int64("article.id", id),
			attribute.Int("delta", delta),
		),
	)
	defer span.End()

	a, err := repo.IncrementArticleVotes(ctx, s.DB, id, delta)
	if err != nil {
		return nil, notFoundAs(err, KindArticleNotFound)
	}
	return a, nil
}

// Create inserts a and returns its detail view, which carries the assigned
// id, the stored timestamp, and a comment_count of zero. An unknown topic or
// author fails with ErrNotFound.
func (s *ArticleService) Create(ctx context.Context, a *domain.Article) (*domain.ArticleDetail, error) {
	tr := otel.Tracer("services/ArticleService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("topic", a.Topic),
			attribute.String("author", a.Author),
		),
	)
	defer span.End()

	var out *domain.ArticleDetail
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := repo.CreateArticle(ctx, tx, a)
		if err != nil {
			return err
		}
		out, err = repo.GetArticle(ctx, tx, created.ArticleID)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, translateStoreError(err)
	}
	return out, nil
}
