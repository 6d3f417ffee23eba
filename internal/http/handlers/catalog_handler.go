package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsResponse describes every route of the API.
type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints" swaggertype:"object"`
}

// TopicsResponse lists all topics.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// UsersResponse lists all users.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserResponse wraps one user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// Endpoints godoc
// @ID       listEndpoints
// @Summary  Describe the API
// @Tags     API
// @Produce  json
// @Success  200 {object} handlers.EndpointsResponse
// @Router   / [get]
func (h *Handlers) Endpoints(c *gin.Context) {
	ok(c, http.StatusOK, EndpointsResponse{Endpoints: endpointsJSON})
}

// ListTopics godoc
// @ID       listTopics
// @Summary  List topics
// @Tags     Topics
// @Produce  json
// @Success  200 {object} handlers.TopicsResponse
// @Router   /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	ts, err := h.topics.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: ts})
}

// ListUsers godoc
// @ID       listUsers
// @Summary  List users
// @Tags     Users
// @Produce  json
// @Success  200 {object} handlers.UsersResponse
// @Router   /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	us, err := h.users.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: us})
}

// GetUser godoc
// @ID       getUser
// @Summary  Get a user
// @Tags     Users
// @Produce  json
// @Param    username path string true "Username"
// @Success  200 {object} handlers.UserResponse
// @Failure  404 {object} handlers.ErrorResponse "User Not Found"
// @Router   /users/{username} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, UserResponse{User: u})
}
