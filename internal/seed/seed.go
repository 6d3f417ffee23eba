package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Seed drops and recreates every table, then inserts data in a single
// transaction. Article ids are assigned by the store in fixture order.
func Seed(ctx context.Context, db *gorm.DB, data Data) error {
	db = db.WithContext(ctx)

	models := domain.Models()
	m := db.Migrator()
	for i := len(models) - 1; i >= 0; i-- {
		if err := m.DropTable(models[i]); err != nil {
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range data.Topics {
			if err := tx.Create(&data.Topics[i]).Error; err != nil {
				return fmt.Errorf("insert topic %q: %w", data.Topics[i].Slug, err)
			}
		}
		for i := range data.Users {
			if err := tx.Create(&data.Users[i]).Error; err != nil {
				return fmt.Errorf("insert user %q: %w", data.Users[i].Username, err)
			}
		}

		ids := make([]int64, len(data.Articles))
		for i, f := range data.Articles {
			a := domain.Article{
				Title:         f.Title,
				Topic:         f.Topic,
				Author:        f.Author,
				Body:          f.Body,
				CreatedAt:     f.CreatedAt,
				Votes:         f.Votes,
				ArticleImgURL: f.ArticleImgURL,
			}
			if a.ArticleImgURL == "" {
				a.ArticleImgURL = domain.DefaultArticleImgURL
			}
			if err := tx.Omit(clause.Associations).Create(&a).Error; err != nil {
				return fmt.Errorf("insert article %d: %w", i+1, err)
			}
			ids[i] = a.ArticleID
		}

		for i, f := range data.Comments {
			if f.Article < 1 || f.Article > len(ids) {
				return fmt.Errorf("comment %d references unknown article %d", i+1, f.Article)
			}
			c := domain.Comment{
				Body:      f.Body,
				ArticleID: ids[f.Article-1],
				Author:    f.Author,
				Votes:     f.Votes,
				CreatedAt: f.CreatedAt,
			}
			if err := tx.Omit(clause.Associations).Create(&c).Error; err != nil {
				return fmt.Errorf("insert comment %d: %w", i+1, err)
			}
		}
		return nil
	})
}
