// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model, including the filtered/sorted/paginated collection query.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition. Sort columns and directions must be
// validated by the caller; they are interpolated into ORDER BY.
//
// Error semantics:
//   - When an article is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm/driver error is propagated for translation upstream.
//
// Functions:
//
//   - ListArticles(ctx, db, q) -> []domain.ArticleSummary, error
//     Articles LEFT JOIN comments, grouped per article, filtered by topic,
//     ordered by q.SortBy/q.Order, paginated by q.Limit/q.Page.
//
//   - CountArticles(ctx, db, topic) -> int64, error
//     Companion count with the same filter and no pagination.
//
//   - GetArticle(ctx, db, id) -> *domain.ArticleDetail, error
//     Single article with body and comment_count, or ErrNotFound.
//
//   - CreateArticle(ctx, db, a) -> *domain.Article, error
//
//   - IncrementArticleVotes(ctx, db, id, delta) -> *domain.Article, error
//     Adds delta in place and returns the updated row, or ErrNotFound.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ColumnCommentCount is the computed column; it is the only sort key that is
// not qualified with the articles table.
const ColumnCommentCount = "comment_count"

const (
	summaryColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
		"articles.created_at, articles.votes, articles.article_img_url, " +
		"COUNT(comments.article_id) AS comment_count"

	detailColumns = "articles.article_id, articles.title, articles.topic, articles.author, articles.body, " +
		"articles.created_at, articles.votes, articles.article_img_url, " +
		"COUNT(comments.article_id) AS comment_count"

	joinComments = "LEFT JOIN comments ON comments.article_id = articles.article_id"
)

// ArticleQuery carries validated list parameters.
//
// SortBy must be one of the allowed article columns or ColumnCommentCount,
// Order must be "ASC" or "DESC", and Limit/Page must be >= 1.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  int
	Page   int
}

// Offset returns the row offset for the requested page.
func (q ArticleQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// OrderBy returns the primary ORDER BY term for the query.
func (q ArticleQuery) OrderBy() string {
	col := q.SortBy
	if col != ColumnCommentCount {
		col = "articles." + col
	}
	return col + " " + q.Order
}

// filterArticles applies the optional topic predicate before grouping.
func filterArticles(tx *gorm.DB, topic string) *gorm.DB {
	if topic != "" {
		tx = tx.Where("articles.topic = ?", topic)
	}
	return tx
}

// ListArticles returns one page of article summaries.
//
// Rows that tie on the primary sort key are ordered by article_id ascending
// so pages are stable across requests.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleQuery) ([]domain.ArticleSummary, error) {
	out := []domain.ArticleSummary{}
	tx := db.WithContext(ctx).
		Table("articles").
		Select(summaryColumns).
		Joins(joinComments)
	err := filterArticles(tx, q.Topic).
		Group("articles.article_id").
		Order(q.OrderBy()).
		Order("articles.article_id ASC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Scan(&out).Error
	return out, err
}

// CountArticles returns the number of articles matching topic ("" = all),
// independent of pagination.
func CountArticles(ctx context.Context, db *gorm.DB, topic string) (int64, error) {
	var total int64
	tx := db.WithContext(ctx).Model(&domain.Article{})
	err := filterArticles(tx, topic).Count(&total).Error
	return total, err
}

// GetArticle fetches the full detail view of one article. If the record
// does not exist, it returns ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.ArticleDetail, error) {
	var out domain.ArticleDetail
	err := db.WithContext(ctx).
		Table("articles").
		Select(detailColumns).
		Joins(joinComments).
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		Take(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateArticle inserts a. CreatedAt is set to UTC now when zero. Referenced
// topic and author must exist; otherwise the store's FK error is returned.
func CreateArticle(ctx context.Context, db *gorm.DB, a *domain.Article) (*domain.Article, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// IncrementArticleVotes adds delta to the article's vote counter in a single
// UPDATE and returns the post-update row, all within one transaction. If no
// row matches, it returns ErrNotFound and nothing is changed.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	var out domain.Article
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Article{}).
			Where("article_id = ?", id).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("article_id = ?", id).Take(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
