package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// Defaults for the articles collection query.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// sortableColumns is the closed set of sort_by values. Anything outside it
// is rejected before it can reach ORDER BY.
var sortableColumns = map[string]struct{}{
	"article_id":            {},
	"title":                 {},
	"topic":                 {},
	"author":                {},
	"created_at":            {},
	"votes":                 {},
	"article_img_url":       {},
	repo.ColumnCommentCount: {},
}

// Body is a decoded JSON object request body. Fields are projected through
// explicit allow-lists, so unknown keys are ignored.
type Body map[string]json.RawMessage

// RawArticleQuery holds the query-string values of GET /articles exactly as
// received. Empty means absent.
type RawArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

// ParseArticleQuery validates raw and applies defaults. The returned query
// only ever carries an allow-listed column and ASC or DESC.
func ParseArticleQuery(raw RawArticleQuery) (repo.ArticleQuery, error) {
	q := repo.ArticleQuery{
		Topic:  raw.Topic,
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}

	if raw.SortBy != "" {
		if _, ok := sortableColumns[raw.SortBy]; !ok {
			return q, ErrInvalidColumn
		}
		q.SortBy = raw.SortBy
	}

	if raw.Order != "" {
		switch o := strings.ToUpper(raw.Order); o {
		case "ASC", "DESC":
			q.Order = o
		default:
			return q, ErrInvalidOrder
		}
	}

	var err error
	if q.Limit, err = positiveInt(raw.Limit, DefaultLimit); err != nil {
		return q, err
	}
	if q.Page, err = positiveInt(raw.Page, DefaultPage); err != nil {
		return q, err
	}
	// The row offset (page-1)*limit must fit in an int.
	if q.Page-1 > math.MaxInt/q.Limit {
		return q, ErrInvalidRequest
	}
	return q, nil
}

func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, wrap(KindInvalidRequest, err)
	}
	return n, nil
}

// ParseID parses a path identifier. Only base-10 integers are accepted.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, wrap(KindInvalidRequest, err)
	}
	return id, nil
}

// ParseVoteDelta extracts inc_votes. It must be present and a JSON integer;
// every other field is ignored.
func ParseVoteDelta(b Body) (int, error) {
	raw, ok := b["inc_votes"]
	if !ok {
		return 0, ErrInvalidRequest
	}
	// json.Number rejects strings, bools, and null; Atoi then rejects
	// fractions and exponents.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, wrap(KindInvalidRequest, err)
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, ErrInvalidRequest
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, wrap(KindInvalidRequest, err)
	}
	return n, nil
}

// ParseNewArticle projects title, topic, author, body, and the optional
// article_img_url out of b. Values are stored as sent; only the title is
// NFC-normalized.
func ParseNewArticle(b Body) (*domain.Article, error) {
	a := &domain.Article{}
	required := []struct {
		key string
		dst *string
	}{
		{"title", &a.Title},
		{"topic", &a.Topic},
		{"author", &a.Author},
		{"body", &a.Body},
	}
	for _, f := range required {
		s, err := requiredString(b, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = s
	}
	a.Title = norm.NFC.String(a.Title)

	img, present, err := optionalString(b, "article_img_url")
	if err != nil {
		return nil, err
	}
	if !present || img == "" {
		img = domain.DefaultArticleImgURL
	}
	a.ArticleImgURL = img
	return a, nil
}

// ParseNewComment projects username and body out of b. The article id comes
// from the path.
func ParseNewComment(articleID int64, b Body) (*domain.Comment, error) {
	author, err := requiredString(b, "username")
	if err != nil {
		return nil, err
	}
	body, err := requiredString(b, "body")
	if err != nil {
		return nil, err
	}
	return &domain.Comment{ArticleID: articleID, Author: author, Body: body}, nil
}

func requiredString(b Body, key string) (string, error) {
	s, present, err := optionalString(b, key)
	if err != nil {
		return "", err
	}
	if !present || strings.TrimSpace(s) == "" {
		return "", ErrInvalidRequest
	}
	return s, nil
}

// optionalString decodes key as a JSON string. A non-string value is an
// error; null counts as absent.
func optionalString(b Body, key string) (string, bool, error) {
	raw, ok := b[key]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, wrap(KindInvalidRequest, err)
	}
	return s, true, nil
}
