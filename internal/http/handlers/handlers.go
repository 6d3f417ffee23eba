package handlers

import (
	"context"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ArticleService is the article use-case surface consumed by the handlers.
type ArticleService interface {
	List(ctx context.Context, q repo.ArticleQuery) (*services.ArticlePage, error)
	Get(ctx context.Context, id int64) (*domain.ArticleDetail, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Article, error)
	Create(ctx context.Context, a *domain.Article) (*domain.ArticleDetail, error)
}

// CommentService is the comment use-case surface consumed by the handlers.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// TopicService lists topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

// UserService lists and looks up users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

// Handlers groups every API endpoint over its services.
type Handlers struct {
	articles ArticleService
	comments CommentService
	topics   TopicService
	users    UserService
}

// New returns Handlers bound to the given services.
func New(articles ArticleService, comments CommentService, topics TopicService, users UserService) *Handlers {
	return &Handlers{articles: articles, comments: comments, topics: topics, users: users}
}
