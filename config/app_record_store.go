package config

import (
	"strings"
	"time"

	"github.com/akeren/saascribe/internal/log"
	"github.com/go-resty/resty/v2"
)

// NewRecordStoreClient builds the HTTP client for a PostgREST-compatible record
// store. The key is sent both as apikey and as a bearer token.
func NewRecordStoreClient(logger *log.Logger, store *StoreConfig, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(store.RecordStoreURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	if schema := strings.TrimSpace(store.RecordStoreSchema); schema != "" {
		client.SetHeader("Content-Profile", schema)
	}

	if key := strings.TrimSpace(store.RecordStoreKey); key != "" {
		client.SetHeader("apikey", key)
		client.SetAuthToken(key)
	} else {
		logger.Warn("RECORD_STORE_KEY not set; record store requests are unauthenticated")
	}

	logger.Info("Using remote record store", "url", store.RecordStoreURL, "schema", store.RecordStoreSchema)
	return client
}
