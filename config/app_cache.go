package config

import (
	"context"
	"errors"

	"github.com/akeren/saascribe/internal/log"
	pkgredis "github.com/akeren/saascribe/pkg/redis"
	"github.com/go-redis/redis/v8"
)

type Cache interface {
	Ping(ctx context.Context) error
	Close() error
}

// RedisClientProvider is implemented by caches that can hand out their raw client,
// which the redis waitlist store writes through.
type RedisClientProvider interface {
	GetClient() *redis.Client
}

type CacheConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

var ErrCacheNotConfigured = errors.New("cache host is not configured")

func NewCacheConfig() (*CacheConfig, error) {
	cc := &CacheConfig{}
	if err := ParseEnv(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

func (cc *CacheConfig) IsConfigured() bool {
	return cc.Host != ""
}

func (cc *CacheConfig) NewCache(logger *log.Logger) (Cache, error) {
	if !cc.IsConfigured() {
		logger.Error("Cache (Redis) configuration is missing")
		return nil, ErrCacheNotConfigured
	}

	cache, err := pkgredis.NewRedisCache(&pkgredis.Config{
		Host:     cc.Host,
		Port:     cc.Port,
		Password: cc.Password,
		DB:       cc.DB,
	})
	if err != nil {
		logger.Error("Failed to create Cache (Redis)", "error", err)
		return nil, err
	}

	logger.Info("Cache (Redis) connected successfully", "addr", cc.Host+":"+cc.Port, "db", cc.DB)
	return cache, nil
}

// NewCacheOrNil treats Redis as optional unless required is set, in which case
// a missing or unreachable Redis is an error.
func (cc *CacheConfig) NewCacheOrNil(logger *log.Logger, required bool) (Cache, error) {
	if !cc.IsConfigured() {
		if required {
			return nil, ErrCacheNotConfigured
		}
		logger.Info("Cache (Redis) is not configured; proceeding without external cache")
		return nil, nil
	}

	cache, err := cc.NewCache(logger)
	if err != nil {
		if required {
			return nil, err
		}
		return nil, nil
	}

	return cache, nil
}

func GetRedisClient(cache Cache) *redis.Client {
	if cache == nil {
		return nil
	}

	if provider, ok := cache.(RedisClientProvider); ok {
		return provider.GetClient()
	}

	return nil
}

func CloseCache(cache Cache, logger *log.Logger) error {
	if cache == nil {
		logger.Info("No cache provided; skipping cache close")
		return nil
	}

	if err := cache.Close(); err != nil {
		logger.Error("Failed to close cache", "error", err)
		return err
	}

	logger.Info("Cache connection closed")
	return nil
}
