package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Property stats cache keys
const propertyStatsKeyFmt = "property:%d:stats"

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when Redis is
// unreachable every helper degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "redis" // fallback to service name
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

// Enabled reports whether a Redis connection was established at startup.
func Enabled() bool {
	return client != nil
}

// Ping checks the Redis connection for health reporting.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("cache disabled")
	}
	return client.Ping(ctx).Err()
}

// authKey derives the cache key from the credentials and the stored password
// hash, so a password change orphans any cached entry immediately.
func authKey(email, password, passwordHash string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password + ":" + passwordHash))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password, passwordHash string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := authKey(email, password, passwordHash)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password, passwordHash string, userID int64) {
	if client == nil {
		return
	}
	key := authKey(email, password, passwordHash)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// GetCachedPropertyStats returns a cached serialized property detail view
func GetCachedPropertyStats(ctx context.Context, propertyID int) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	key := fmt.Sprintf(propertyStatsKeyFmt, propertyID)
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CachePropertyStats caches a property detail view for one minute
func CachePropertyStats(ctx context.Context, propertyID int, data []byte) {
	if client == nil {
		return
	}
	key := fmt.Sprintf(propertyStatsKeyFmt, propertyID)
	client.Set(ctx, key, data, time.Minute)
}

// InvalidatePropertyStats drops the cached view after a unit or assignment
// change under the property
func InvalidatePropertyStats(ctx context.Context, propertyID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(propertyStatsKeyFmt, propertyID))
}
