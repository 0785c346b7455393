package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
	StoreBackendREST     = "rest"
	StoreBackendRedis    = "redis"
)

type AppConfig struct {
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Port            string        `env:"APP_PORT" envDefault:"8080"`
}

// StoreConfig selects where waitlist entries are written.
type StoreConfig struct {
	Backend    string `env:"WAITLIST_STORE" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"saascribe.db"`

	// Remote record store (PostgREST-compatible), used when Backend is "rest".
	RecordStoreURL    string `env:"RECORD_STORE_URL"`
	RecordStoreKey    string `env:"RECORD_STORE_KEY"`
	RecordStoreSchema string `env:"RECORD_STORE_SCHEMA" envDefault:"public"`
}

type SiteConfig struct {
	Name         string `env:"SITE_NAME" envDefault:"SaaScribe"`
	TwitterURL   string `env:"SITE_TWITTER_URL" envDefault:"https://x.com/ShrishailPatil_"`
	ContactEmail string `env:"SITE_CONTACT_EMAIL"`
}

type Settings struct {
	App   AppConfig
	Store StoreConfig
	Site  SiteConfig
}

func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSettings() (*Settings, error) {
	settings := &Settings{}
	if err := ParseEnv(settings); err != nil {
		return nil, err
	}

	settings.Store.Backend = strings.ToLower(strings.TrimSpace(settings.Store.Backend))
	if err := settings.Store.Validate(); err != nil {
		return nil, err
	}

	if settings.App.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", settings.App.RequestTimeout)
	}

	return settings, nil
}

func (sc *StoreConfig) Validate() error {
	switch sc.Backend {
	case StoreBackendPostgres, StoreBackendRedis:
		return nil
	case StoreBackendSQLite:
		if strings.TrimSpace(sc.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when WAITLIST_STORE=%s", StoreBackendSQLite)
		}
		return nil
	case StoreBackendREST:
		if strings.TrimSpace(sc.RecordStoreURL) == "" {
			return fmt.Errorf("RECORD_STORE_URL is required when WAITLIST_STORE=%s", StoreBackendREST)
		}
		u, err := url.Parse(sc.RecordStoreURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid RECORD_STORE_URL %q", sc.RecordStoreURL)
		}
		return nil
	default:
		return fmt.Errorf("unsupported WAITLIST_STORE %q (allowed: postgres, sqlite, rest, redis)", sc.Backend)
	}
}

// UsesSQL reports whether the backend is served through gorm.
func (sc *StoreConfig) UsesSQL() bool {
	return sc.Backend == StoreBackendPostgres || sc.Backend == StoreBackendSQLite
}
