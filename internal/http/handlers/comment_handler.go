// Comment HTTP handlers:
//   - GET    /articles/{article_id}/comments
//   - POST   /articles/{article_id}/comments
//   - PATCH  /comments/{comment_id}
//   - DELETE /comments/{comment_id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

// CommentsResponse lists an article's comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// PostedCommentResponse wraps a newly created comment.
type PostedCommentResponse struct {
	PostedComment *domain.Comment `json:"postedComment"`
}

// UpdatedCommentResponse wraps the comment after a vote delta.
type UpdatedCommentResponse struct {
	UpdatedComment *domain.Comment `json:"updatedComment"`
}

// NewCommentRequest documents the comment creation body.
type NewCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body" example:"Great read."`
}

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Description Newest first.
// @Tags        Comments
// @Produce     json
// @Param       article_id path int true "Article ID"
// @Success     200 {object} handlers.CommentsResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Article Not Found"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := services.ParseID(c.Param("article_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	cs, err := h.comments.ListForArticle(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: cs})
}

// PostComment godoc
// @ID          postComment
// @Summary     Comment on an article
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id path int                        true "Article ID"
// @Param       body       body handlers.NewCommentRequest true "New comment"
// @Success     201 {object} handlers.PostedCommentResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Not Found"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
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
	in, err := services.ParseNewComment(id, b)
	if err != nil {
		renderError(c, err)
		return
	}
	out, err := h.comments.Create(c.Request.Context(), in)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusCreated, PostedCommentResponse{PostedComment: out})
}

// VoteComment godoc
// @ID          voteComment
// @Summary     Change a comment's votes
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id path int                  true "Comment ID"
// @Param       body       body handlers.VoteRequest true "Vote delta"
// @Success     200 {object} handlers.UpdatedCommentResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Comment Not Found"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) VoteComment(c *gin.Context) {
	id, err := services.ParseID(c.Param("comment_id"))
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
	out, err := h.comments.Vote(c.Request.Context(), id, delta)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, UpdatedCommentResponse{UpdatedComment: out})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id path int true "Comment ID"
// @Success     204 "No Content"
// @Failure     400 {object} handlers.ErrorResponse "Invalid Request"
// @Failure     404 {object} handlers.ErrorResponse "Comment Not Found"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := services.ParseID(c.Param("comment_id"))
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	noContent(c)
}
