package repo

import (
	"context"
	"testing"
)

func TestExistenceChecks(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		check func() (bool, error)
		want  bool
	}{
		{"topic paper", func() (bool, error) { return TopicExists(ctx, db, "paper") }, true},
		{"topic dogs", func() (bool, error) { return TopicExists(ctx, db, "dogs") }, false},
		{"article 13", func() (bool, error) { return ArticleExists(ctx, db, 13) }, true},
		{"article 999", func() (bool, error) { return ArticleExists(ctx, db, 999) }, false},
		{"comment 18", func() (bool, error) { return CommentExists(ctx, db, 18) }, true},
		{"comment 999", func() (bool, error) { return CommentExists(ctx, db, 999) }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.check()
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if got != c.want {
				t.Fatalf("exists = %v; want %v", got, c.want)
			}
		})
	}
}

func TestCatalogQueries(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	ts, err := ListTopics(ctx, db)
	if err != nil || len(ts) != 3 || ts[0].Slug != "cats" {
		t.Fatalf("topics = %+v, %v", ts, err)
	}
	us, err := ListUsers(ctx, db)
	if err != nil || len(us) != 4 || us[0].Username != "butter_bridge" {
		t.Fatalf("users = %+v, %v", us, err)
	}
	u, err := GetUser(ctx, db, "icellusedkars")
	if err != nil || u.Name != "sam" {
		t.Fatalf("user = %+v, %v", u, err)
	}
	if _, err := GetUser(ctx, db, "existsnot"); err != ErrNotFound {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}
