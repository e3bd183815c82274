package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"sync-backend/internal/models"
)

const (
	catalogKey = "sync:catalog"
	catalogTTL = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. A failed init leaves the client nil
// and every helper degrades to a miss, so the server works without Redis.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedCatalog returns the cached reference-data payload, if any.
func GetCachedCatalog(ctx context.Context) (*models.DataDownload, bool) {
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var payload models.DataDownload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

// CacheCatalog stores the reference-data payload with a short TTL.
func CacheCatalog(ctx context.Context, payload *models.DataDownload) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	client.Set(ctx, catalogKey, raw, catalogTTL)
}

// InvalidateCatalog drops the cached payload (after desktop-side imports).
func InvalidateCatalog(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, catalogKey)
}
