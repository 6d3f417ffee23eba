package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/domain"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OTEL_ENABLED", "false")
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	return cmd.ExecuteContext(context.Background())
}

func TestSeedCommand(t *testing.T) {
	path := sqliteEnv(t)
	require.NoError(t, run(t, "seed"))

	db, closeDB, err := openStore(config.Config{DBDriver: "sqlite", DBPath: path, DBMaxOpenConns: 1})
	require.NoError(t, err)
	defer closeDB()

	var n int64
	require.NoError(t, db.Model(&domain.Article{}).Count(&n).Error)
	assert.EqualValues(t, 13, n)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("DB_DRIVER", "mysql")
	err := run(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	sqliteEnv(t)
	assert.Error(t, run(t, "nope"))
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	_, _, err := openStore(config.Config{DBDriver: "oracle", DBMaxOpenConns: 1})
	assert.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	path := sqliteEnv(t)
	cfg := config.Config{
		Port:              "0",
		ReadTimeout:       time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		MaxHeaderBytes:    1 << 20,
		GinMode:           "test",
		APIBasePath:       "/api",
		DBDriver:          "sqlite",
		DBPath:            path,
		DBMaxOpenConns:    2,
		MaxBodyBytes:      1 << 20,
		RateRPS:           10,
		RateBurst:         10,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
