// Package services defines the business logic for articles, comments,
// topics, and users. This file defines the error taxonomy: every failure a
// service returns is either a *Error carrying a Kind, or an unmapped error
// that the transport layer renders as an internal error.
//
// Each Kind maps to exactly one HTTP status and one client-facing message.
// The mapping lives in kindTable so handlers never branch on individual
// errors.
package services

import (
	"errors"
	"net/http"
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindInternal is any failure without a more specific kind.
	KindInternal Kind = iota
	KindInvalidRequest
	KindInvalidColumn
	KindInvalidOrder
	// KindNotFound is a generic missing reference, typically an FK
	// violation on insert.
	KindNotFound
	KindArticleNotFound
	KindCommentNotFound
	KindTopicNotFound
	KindUserNotFound
)

type kindInfo struct {
	name   string
	status int
	msg    string
}

var kindTable = map[Kind]kindInfo{
	KindInternal:        {"Internal", http.StatusInternalServerError, "Internal Server Error"},
	KindInvalidRequest:  {"InvalidRequest", http.StatusBadRequest, "Invalid Request"},
	KindInvalidColumn:   {"InvalidColumn", http.StatusBadRequest, "Invalid Column"},
	KindInvalidOrder:    {"InvalidOrder", http.StatusBadRequest, "Invalid Order"},
	KindNotFound:        {"NotFound", http.StatusNotFound, "Not Found"},
	KindArticleNotFound: {"ArticleNotFound", http.StatusNotFound, "Article Not Found"},
	KindCommentNotFound: {"CommentNotFound", http.StatusNotFound, "Comment Not Found"},
	KindTopicNotFound:   {"TopicNotFound", http.StatusNotFound, "Topic Not Found"},
	KindUserNotFound:    {"UserNotFound", http.StatusNotFound, "User Not Found"},
}

func (k Kind) info() kindInfo {
	if i, ok := kindTable[k]; ok {
		return i
	}
	return kindTable[KindInternal]
}

// String returns the kind's name.
func (k Kind) String() string { return k.info().name }

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int { return k.info().status }

// Message returns the client-safe message for the kind.
func (k Kind) Message() string { return k.info().msg }

// Error is a classified failure. Err optionally holds the underlying cause,
// which is for logs only and never rendered to clients.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Message() + ": " + e.Err.Error()
	}
	return e.Kind.Message()
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound)
// holds regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// wrap classifies cause as kind.
func wrap(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidRequest  = &Error{Kind: KindInvalidRequest}
	ErrInvalidColumn   = &Error{Kind: KindInvalidColumn}
	ErrInvalidOrder    = &Error{Kind: KindInvalidOrder}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrArticleNotFound = &Error{Kind: KindArticleNotFound}
	ErrCommentNotFound = &Error{Kind: KindCommentNotFound}
	ErrTopicNotFound   = &Error{Kind: KindTopicNotFound}
	ErrUserNotFound    = &Error{Kind: KindUserNotFound}
)

// KindOf returns the kind of err, or KindInternal when err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
