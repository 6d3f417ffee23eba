package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeErrorTable maps one backend's native errors onto kinds.
// Supporting a new backend means adding a table to storeTables.
type storeErrorTable interface {
	lookup(err error) (Kind, bool)
}

// postgresTable keys on SQLSTATE.
type postgresTable map[string]Kind

func (t postgresTable) lookup(err error) (Kind, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return 0, false
	}
	k, ok := t[pgErr.Code]
	return k, ok
}

// sqliteTable keys on the extended result code, falling back to the
// driver's message text when the error carries no code.
type sqliteTable struct {
	codes    map[int]Kind
	messages map[string]Kind
}

// sqliteCoder is satisfied by the glebarez/modernc driver error.
type sqliteCoder interface {
	Code() int
}

func (t sqliteTable) lookup(err error) (Kind, bool) {
	var ce sqliteCoder
	if errors.As(err, &ce) {
		if k, ok := t.codes[ce.Code()]; ok {
			return k, true
		}
	}
	low := strings.ToLower(err.Error())
	for substr, k := range t.messages {
		if strings.Contains(low, substr) {
			return k, true
		}
	}
	return 0, false
}

var storeTables = []storeErrorTable{
	postgresTable{
		"23503": KindNotFound,       // foreign_key_violation
		"22P02": KindInvalidRequest, // invalid_text_representation
		"23502": KindInvalidRequest, // not_null_violation
	},
	sqliteTable{
		codes: map[int]Kind{
			787:  KindNotFound,       // SQLITE_CONSTRAINT_FOREIGNKEY
			1299: KindInvalidRequest, // SQLITE_CONSTRAINT_NOTNULL
			275:  KindInvalidRequest, // SQLITE_CONSTRAINT_CHECK
		},
		messages: map[string]Kind{
			"foreign key constraint failed": KindNotFound,
			"not null constraint failed":    KindInvalidRequest,
			"check constraint failed":       KindInvalidRequest,
		},
	},
}

// translateStoreError converts a store-native error into a taxonomy error.
// Already-classified errors pass through; unmatched errors are returned
// unchanged and end up as internal errors.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, t := range storeTables {
		if k, ok := t.lookup(err); ok {
			return wrap(k, err)
		}
	}
	return err
}
