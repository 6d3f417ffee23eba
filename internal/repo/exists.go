// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides existence probes used to disambiguate
// "nothing matches" from "referenced resource does not exist".
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// exists reports whether at least one row of model has column = value.
func exists(ctx context.Context, db *gorm.DB, model any, column string, value any) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(model).
		Where(column+" = ?", value).
		Count(&n).Error
	return n > 0, err
}

// TopicExists reports whether a topic with the given slug exists.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	return exists(ctx, db, &domain.Topic{}, "slug", slug)
}

// ArticleExists reports whether an article with the given id exists.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return exists(ctx, db, &domain.Article{}, "article_id", id)
}

// CommentExists reports whether a comment with the given id exists.
func CommentExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	return exists(ctx, db, &domain.Comment{}, "comment_id", id)
}
