package redis

import (
	"testing"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestConfigAddr(t *testing.T) {
	assert.Equal(t, "cache.internal:6379", (&Config{Host: "cache.internal", Port: "6379"}).Addr())
	assert.Equal(t, "[::1]:6380", (&Config{Host: "::1", Port: "6380"}).Addr())
}

func TestNewRedisCache_RequiresHost(t *testing.T) {
	cache, err := NewRedisCache(&Config{Port: "6379"})
	assert.Error(t, err)
	assert.Nil(t, cache)

	cache, err = NewRedisCache(nil)
	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestNewRedisCacheFromClient_SharesClient(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	cache := NewRedisCacheFromClient(client)

	assert.Same(t, client, cache.GetClient())
	assert.NoError(t, cache.Close())
}
