// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListComments returns the comments of articleID, most recent first
// (ties broken by comment_id ascending). An article with no comments, or an
// unknown article, yields an empty slice; use ArticleExists to tell them apart.
func ListComments(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Order("comment_id ASC").
		Find(&out).Error
	return out, err
}

// CreateComment inserts c with zero votes. A missing article or author
// surfaces as the store's FK error.
func CreateComment(ctx context.Context, db *gorm.DB, c *domain.Comment) (*domain.Comment, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Votes = 0
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// IncrementCommentVotes adds delta to the comment's vote counter and returns
// the updated row. If no row matches, it returns ErrNotFound.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error) {
	var out domain.Comment
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Comment{}).
			Where("comment_id = ?", id).
			UpdateColumn("votes", gorm.Expr("votes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("comment_id = ?", id).Take(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes the comment with the given id. It returns
// ErrNotFound when nothing was deleted, so a repeated delete fails.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
