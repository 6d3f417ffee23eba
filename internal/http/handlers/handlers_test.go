package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ---------- stubs ----------

type stubArticles struct {
	lastQuery repo.ArticleQuery
	lastDelta int
	err       error
}

func (s *stubArticles) List(_ context.Context, q repo.ArticleQuery) (*services.ArticlePage, error) {
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	return &services.ArticlePage{Articles: []domain.ArticleSummary{{ArticleID: 1}}, TotalCount: 1}, nil
}

func (s *stubArticles) Get(_ context.Context, id int64) (*domain.ArticleDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.ArticleDetail{ArticleID: id, Body: "b"}, nil
}

func (s *stubArticles) Vote(_ context.Context, id int64, delta int) (*domain.Article, error) {
	s.lastDelta = delta
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Article{ArticleID: id, Votes: delta}, nil
}

func (s *stubArticles) Create(_ context.Context, a *domain.Article) (*domain.ArticleDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.ArticleDetail{ArticleID: 14, Title: a.Title, ArticleImgURL: a.ArticleImgURL}, nil
}

type stubComments struct {
	err error
}

func (s *stubComments) ListForArticle(context.Context, int64) ([]domain.Comment, error) {
	return []domain.Comment{}, s.err
}

func (s *stubComments) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	c.CommentID = 19
	return c, nil
}

func (s *stubComments) Vote(_ context.Context, id int64, delta int) (*domain.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Comment{CommentID: id, Votes: delta}, nil
}

func (s *stubComments) Delete(context.Context, int64) error { return s.err }

type stubCatalog struct{}

func (stubCatalog) List(context.Context) ([]domain.Topic, error) {
	return []domain.Topic{{Slug: "cats"}}, nil
}

type stubUsers struct{}

func (stubUsers) List(context.Context) ([]domain.User, error) {
	return []domain.User{{Username: "lurker"}}, nil
}

func (stubUsers) Get(_ context.Context, username string) (*domain.User, error) {
	if username != "lurker" {
		return nil, services.ErrUserNotFound
	}
	return &domain.User{Username: username}, nil
}

// ---------- helpers ----------

func newEngine(a ArticleService, c CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(a, c, stubCatalog{}, stubUsers{})
	r := gin.New()
	r.GET("/api", h.Endpoints)
	r.GET("/api/topics", h.ListTopics)
	r.GET("/api/users", h.ListUsers)
	r.GET("/api/users/:username", h.GetUser)
	r.GET("/api/articles", h.ListArticles)
	r.POST("/api/articles", h.PostArticle)
	r.GET("/api/articles/:article_id", h.GetArticle)
	r.PATCH("/api/articles/:article_id", h.VoteArticle)
	r.GET("/api/articles/:article_id/comments", h.ListComments)
	r.POST("/api/articles/:article_id/comments", h.PostComment)
	r.PATCH("/api/comments/:comment_id", h.VoteComment)
	r.DELETE("/api/comments/:comment_id", h.DeleteComment)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func assertMsg(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.Equal(t, map[string]any{"msg": msg}, decode(t, w))
}

// ---------- tests ----------

func TestListArticles_PassesValidatedQuery(t *testing.T) {
	a := &stubArticles{}
	r := newEngine(a, &stubComments{})

	w := do(r, http.MethodGet, "/api/articles?topic=cats&sort_by=votes&order=asc&limit=5&p=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, repo.ArticleQuery{Topic: "cats", SortBy: "votes", Order: "ASC", Limit: 5, Page: 2}, a.lastQuery)

	body := decode(t, w)
	assert.Contains(t, body, "articles")
	assert.EqualValues(t, 1, body["total_count"])
}

func TestListArticles_ValidationErrors(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{})
	assertMsg(t, do(r, http.MethodGet, "/api/articles?sort_by=likes", ""), http.StatusBadRequest, "Invalid Column")
	assertMsg(t, do(r, http.MethodGet, "/api/articles?order=biggest", ""), http.StatusBadRequest, "Invalid Order")
	assertMsg(t, do(r, http.MethodGet, "/api/articles?limit=-1", ""), http.StatusBadRequest, "Invalid Request")
}

func TestRenderError_InternalHidesCause(t *testing.T) {
	r := newEngine(&stubArticles{err: errors.New("SQLSTATE secret table detail")}, &stubComments{})
	w := do(r, http.MethodGet, "/api/articles/1", "")
	assertMsg(t, w, http.StatusInternalServerError, "Internal Server Error")
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestGetArticle_InvalidAndMissing(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{})
	assertMsg(t, do(r, http.MethodGet, "/api/articles/not-a-number", ""), http.StatusBadRequest, "Invalid Request")

	r = newEngine(&stubArticles{err: services.ErrArticleNotFound}, &stubComments{})
	assertMsg(t, do(r, http.MethodGet, "/api/articles/999", ""), http.StatusNotFound, "Article Not Found")
}

func TestVoteArticle_BodyHandling(t *testing.T) {
	a := &stubArticles{}
	r := newEngine(a, &stubComments{})

	w := do(r, http.MethodPatch, "/api/articles/2", `{"inc_votes": 8, "title": "ignored"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 8, a.lastDelta)
	assert.Contains(t, decode(t, w), "updatedArticle")

	assertMsg(t, do(r, http.MethodPatch, "/api/articles/2", `{"inc_votes": "eight"}`), http.StatusBadRequest, "Invalid Request")
	assertMsg(t, do(r, http.MethodPatch, "/api/articles/2", `{}`), http.StatusBadRequest, "Invalid Request")
	assertMsg(t, do(r, http.MethodPatch, "/api/articles/2", `[1,2]`), http.StatusBadRequest, "Invalid Request")
	assertMsg(t, do(r, http.MethodPatch, "/api/articles/2", ""), http.StatusBadRequest, "Invalid Request")
}

func TestPostArticle_DefaultImage(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{})
	w := do(r, http.MethodPost, "/api/articles", `{"title":"t","topic":"cats","author":"lurker","body":"b"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	posted := decode(t, w)["postedArticle"].(map[string]any)
	assert.Equal(t, domain.DefaultArticleImgURL, posted["article_img_url"])
}

func TestComments_Envelopes(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{})

	w := do(r, http.MethodGet, "/api/articles/2/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"comments": []any{}}, decode(t, w))

	w = do(r, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker","body":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decode(t, w), "postedComment")

	w = do(r, http.MethodPatch, "/api/comments/3", `{"inc_votes":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "updatedComment")

	w = do(r, http.MethodDelete, "/api/comments/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestComments_ErrorKinds(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{err: services.ErrCommentNotFound})
	assertMsg(t, do(r, http.MethodDelete, "/api/comments/999", ""), http.StatusNotFound, "Comment Not Found")
	assertMsg(t, do(r, http.MethodDelete, "/api/comments/abc", ""), http.StatusBadRequest, "Invalid Request")

	r = newEngine(&stubArticles{}, &stubComments{err: services.ErrNotFound})
	assertMsg(t, do(r, http.MethodPost, "/api/articles/4/comments", `{"username":"ghost","body":"x"}`), http.StatusNotFound, "Not Found")

	assertMsg(t, do(r, http.MethodPost, "/api/articles/4/comments", `{"username":1,"body":"x"}`), http.StatusBadRequest, "Invalid Request")
}

func TestCatalogEndpoints(t *testing.T) {
	r := newEngine(&stubArticles{}, &stubComments{})

	w := do(r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	endpoints, ok := decode(t, w)["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "GET /api/articles")
	assert.Contains(t, endpoints, "DELETE /api/comments/:comment_id")

	w = do(r, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "topics")

	w = do(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "users")

	w = do(r, http.MethodGet, "/api/users/lurker", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "user")

	assertMsg(t, do(r, http.MethodGet, "/api/users/existsnot", ""), http.StatusNotFound, "User Not Found")
}

func TestEndpointsFile_IsValidJSON(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal(endpointsJSON, &m))
	assert.Len(t, m, 12)
}
