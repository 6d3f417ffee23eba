// Package handlers provides the HTTP handlers of the news API.
//
// This file holds the response helpers. Every failure is rendered through
// fail or renderError, so error bodies always have the single-field shape
//
//	{"msg": "Article Not Found"}
//
// and 204 responses carry no body at all.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	Msg string `json:"msg" example:"Article Not Found"`
}

// fail aborts the request with status and msg.
func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}

// Fail is the exported variant of fail for router-level fallbacks.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// renderError maps err onto its taxonomy kind and renders it. Unclassified
// errors are logged with full detail and rendered as a bare 500; the cause
// never reaches the client.
func renderError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	middleware.ObserveError(kind.String())

	if kind == services.KindInternal {
		middleware.LoggerFrom(c).Error().
			Err(err).
			Str("route", c.FullPath()).
			Msg("unhandled error")
		_ = c.Error(err)
	}
	fail(c, kind.Status(), kind.Message())
}

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// bindBody decodes the request body as a JSON object. A missing or
// non-object body is an invalid request.
func bindBody(c *gin.Context) (services.Body, error) {
	var b services.Body
	if err := c.ShouldBindJSON(&b); err != nil {
		return nil, &services.Error{Kind: services.KindInvalidRequest, Err: err}
	}
	if b == nil {
		return nil, services.ErrInvalidRequest
	}
	return b, nil
}
