// Article HTTP handlers:
//   - GET   /articles
//   - GET   /articles/{article_id}
//   - PATCH /articles/{article_id}
//   - POST  /articles
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ArticlesResponse is one page of the articles collection.
type ArticlesResponse struct {
	Articles   []domain.ArticleSummary `json:"articles"`
	TotalCount int64                   `json:"total_count" example:"13"`
}

// ArticleResponse wraps a single article detail view.
type ArticleResponse struct {
	Article *domain.ArticleDetail `json:"article"`
}

// UpdatedArticleResponse wraps the article after a vote delta.
type UpdatedArticleResponse struct {
	UpdatedArticle *domain.Article `json:"updatedArticle"`
}

// PostedArticleResponse wraps a newly created article.
type PostedArticleResponse struct {
	PostedArticle *domain.ArticleDetail `json:"postedArticle"`
}

// VoteRequest documents the vote-delta body. Other fields are ignored.
type VoteRequest struct {
	IncVotes int `json:"inc_votes" example:"1"`
}

// NewArticleRequest documents the article creation body.
type NewArticleRequest struct {
	Title         string `json:"title" example:"Living in the shadow of a great man"`
	Topic         string `json:"topic" example:"mitch"`
	Author        string `json:"author" example:"butter_bridge"`
	Body          string `json:"body" example:"I find this existence challenging"`
	ArticleImgURL string `json:"article_img_url,omitempty"`
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns one page of articles (without body) with comment_count, plus the total_count of the filtered set.
// @Tags        Articles
// @Produce     json
// @Param       topic    query string false "Topic slug filter"
// @Param       sort_by  query string false "Sort column" Enums(article_id,title,topic,author,created_at,votes,article_img_url,comment_count) default(created_at)
// @Param       order    query string false "Sort direction" Enums(asc,desc) default(desc)
// @Param       limit    query int    false "Page size" minimum(1) default(10)
// @Param       p        query int    false "Page number" minimum(1) default(1)
// @Success     200 {object} handlers.ArticlesResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Column / Invalid Order / Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Topic Not Found"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	q, err := services.ParseArticleQuery(services.RawArticleQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		renderError(c, err)
		return
	}

	page, err := h.articles.List(c.Request.Context(), q)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: page.Articles, TotalCount: page.TotalCount})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id path int true "Article ID"
// @Success     200 {object} handlers.ArticleResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Article Not Found"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := services.ParseID(c.Param("article_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// VoteArticle godoc
// @ID          voteArticle
// @Summary     Change an article's votes
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id path int                  true "Article ID"
// @Param       body       body handlers.VoteRequest true "Vote delta"
// @Success     200 {object} handlers.UpdatedArticleResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Article Not Found"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) VoteArticle(c *gin.Context) {
	id, err := services.ParseID(c.Param("article_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	b, err := bindBody(c)
	if err != nil {
		renderError(c, err)
		return
	}
	delta, err := services.ParseVoteDelta(b)
	if err != nil {
		renderError(c, err)
		return
	}
	a, err := h.articles.Vote(c.Request.Context(), id, delta)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, UpdatedArticleResponse{UpdatedArticle: a})
}

// PostArticle godoc
// @ID          postArticle
// @Summary     Create an article
// @Description Unknown fields are ignored. article_img_url falls back to a default image.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       body body handlers.NewArticleRequest true "New article"
// @Success     201 {object} handlers.PostedArticleResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Not Found"
// @Router      /articles [post]
func (h *Handlers) PostArticle(c *gin.Context) {
	b, err := bindBody(c)
	if err != nil {
		renderError(c, err)
		return
	}
	in, err := services.ParseNewArticle(b)
	if err != nil {
		renderError(c, err)
		return
	}
	a, err := h.articles.Create(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusCreated, PostedArticleResponse{PostedArticle: a})
}
