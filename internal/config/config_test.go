package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads; getenv treats "" as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
		"MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY", "SWAGGER_ENABLED",
		"API_BASE_PATH", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "DB_MAX_OPEN_CONNS",
		"SEED_ON_START", "MAX_BODY_BYTES", "RATE_RPS", "RATE_BURST", "CORS_ALLOWED_ORIGINS",
		"ENABLE_HSTS", "HSTS_MAX_AGE", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.APIBasePath != "/api" || cfg.GinMode != "release" {
		t.Fatalf("server defaults = %+v", cfg)
	}
	if cfg.DBDriver != "sqlite" || cfg.DBPath != "news.db" || cfg.DBMaxOpenConns != 10 || cfg.SeedOnStart {
		t.Fatalf("store defaults = %+v", cfg)
	}
	if cfg.MaxBodyBytes != 1<<20 || cfg.RateRPS != 5 || cfg.RateBurst != 10 {
		t.Fatalf("limits defaults = %+v", cfg)
	}
	if cfg.OTEL.Enabled || cfg.OTEL.ServiceName != "go-news-backend" || cfg.OTEL.SampleRatio != 1 {
		t.Fatalf("otel defaults = %+v", cfg.OTEL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("GIN_MODE", "weird")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "news/")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/nc_news")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("RATE_RPS", "x")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "1")
	t.Setenv("HSTS_MAX_AGE", "24h")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.ReadTimeout != 2*time.Second || cfg.GinMode != "release" {
		t.Fatalf("server = %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/news" {
		t.Fatalf("logging/docs = %+v", cfg)
	}
	if cfg.DBDriver != "postgres" || cfg.DBMaxOpenConns != 25 || !cfg.SeedOnStart || cfg.MaxBodyBytes != 2048 {
		t.Fatalf("store = %+v", cfg)
	}
	if cfg.RateRPS != 5 {
		t.Fatalf("RATE_RPS should fall back to default on bad parse, got %v", cfg.RateRPS)
	}
	if want := []string{"https://a.com", "http://b"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security = %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.SampleRatio != 0.25 {
		t.Fatalf("otel = %+v", cfg.OTEL)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"timeouts", map[string]string{"WRITE_TIMEOUT": "-1s"}, "timeouts"},
		{"header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"driver", map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER"},
		{"postgres dsn", map[string]string{"DB_DRIVER": "postgres"}, "DATABASE_URL"},
		{"pool", map[string]string{"DB_MAX_OPEN_CONNS": "0"}, "DB_MAX_OPEN_CONNS"},
		{"body bytes", map[string]string{"MAX_BODY_BYTES": "-5"}, "MAX_BODY_BYTES"},
		{"rps", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"burst", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"hsts", map[string]string{"HSTS_MAX_AGE": "-1h"}, "HSTS_MAX_AGE"},
		{"sampler", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v; want mention of %s", err, c.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	t.Setenv("X_EMPTY", "")
	if getenv("X_EMPTY", "d") != "d" {
		t.Fatalf("getenv should fall back on empty var")
	}
	t.Setenv("X_BOOL", " Off ")
	if getbool("X_BOOL", true) {
		t.Fatalf("getbool(Off) = true")
	}
	t.Setenv("X_DUR", "150ms")
	if getdur("X_DUR", time.Second) != 150*time.Millisecond {
		t.Fatalf("getdur parse failed")
	}
	if splitCSV("") != nil {
		t.Fatalf("splitCSV empty should return nil")
	}
	for in, want := range map[string]string{"": "/", "v1": "/v1", "/v1/": "/v1", " / ": "/"} {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestDSN(t *testing.T) {
	c := Config{DBDriver: "sqlite", DBPath: "news.db", DatabaseURL: "postgres://x"}
	if c.DSN() != "news.db" {
		t.Fatalf("sqlite DSN = %q", c.DSN())
	}
	c.DBDriver = "postgres"
	if c.DSN() != "postgres://x" {
		t.Fatalf("postgres DSN = %q", c.DSN())
	}
}
