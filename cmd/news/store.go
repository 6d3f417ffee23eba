package main

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/seed"
)

// openStore connects to the configured database, installs tracing when OTel
// is on, and migrates the schema. The returned func closes the pool.
func openStore(cfg config.Config) (*gorm.DB, func(), error) {
	db, err := repo.Open(cfg.DBDriver, cfg.DSN(), repo.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxOpenConns,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if cfg.OTEL.Enabled {
		if err := repo.Instrument(db); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("instrument db: %w", err)
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return db, closeFn, nil
}

func loadFixtures(ctx context.Context, db *gorm.DB) error {
	if err := seed.Seed(ctx, db, seed.TestData()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
