package services

import (
	"context"
	"errors"

	"github.com/tbourn/go-news-backend/internal/repo"
)

// probe is a repo existence check bound to its key.
type probe func(ctx context.Context) (bool, error)

// require runs p and converts a false result into kind. Store failures are
// translated like any other store error.
func require(ctx context.Context, kind Kind, p probe) error {
	ok, err := p(ctx)
	if err != nil {
		return translateStoreError(err)
	}
	if !ok {
		return &Error{Kind: kind}
	}
	return nil
}

// notFoundAs maps repo.ErrNotFound onto kind and translates anything else.
func notFoundAs(err error, kind Kind) error {
	if errors.Is(err, repo.ErrNotFound) {
		return wrap(kind, err)
	}
	return translateStoreError(err)
}
