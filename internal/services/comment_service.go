// Package services – CommentService
//
// CommentService lists, creates, votes on, and deletes comments.
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

// CommentService coordinates comment reads and writes.
type CommentService struct {
	DB *gorm.DB
}

// ListForArticle returns the article's comments, newest first. The article
// existence check runs alongside the read so an unknown article yields
// ErrArticleNotFound instead of an empty list.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "ListForArticle",
		trace.WithAttributes(attribute.Int64("article.id", articleID)),
	)
	defer span.End()

	var comments []domain.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return require(gctx, KindArticleNotFound, func(ctx context.Context) (bool, error) {
			return repo.ArticleExists(ctx, s.DB, articleID)
		})
	})
	g.Go(func() error {
		out, err := repo.ListComments(gctx, s.DB, articleID)
		if err != nil {
			return translateStoreError(err)
		}
		comments = out
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return comments, nil
}

// Create inserts c. A missing article or author is reported by the store's
// referential integrity and surfaces as ErrNotFound.
func (s *CommentService) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int64("article.id", c.ArticleID),
			attribute.String("author", c.Author),
		),
	)
	defer span.End()

	out, err := repo.CreateComment(ctx, s.DB, c)
	if err != nil {
		span.RecordError(err)
		return nil, translateStoreError(err)
	}
	return out, nil
}

// Vote adds delta to the comment's votes and returns the updated row.
func (s *CommentService) Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Vote",
		trace.WithAttributes(
			attribute.Int64("comment.id", id),
			attribute.Int("delta", delta),
		),
	)
	defer span.End()

	c, err := repo.IncrementCommentVotes(ctx, s.DB, id, delta)
	if err != nil {
		return nil, notFoundAs(err, KindCommentNotFound)
	}
	return c, nil
}

// Delete removes the comment. Deleting an absent comment fails with
// ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()

	err := require(ctx, KindCommentNotFound, func(ctx context.Context) (bool, error) {
		return repo.CommentExists(ctx, s.DB, id)
	})
	if err == nil {
		// A concurrent delete between the check and the DELETE still
		// reports zero rows.
		if derr := repo.DeleteComment(ctx, s.DB, id); derr != nil {
			err = notFoundAs(derr, KindCommentNotFound)
		}
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}
