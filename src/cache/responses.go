package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 15 * time.Minute

// Responses caches external API responses (fact-check registry, news search)
// in Redis for a bounded TTL. A nil Redis client disables caching entirely;
// every method is nil-safe so callers never branch on availability. Stance
// classifications are never cached here.
type Responses struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResponses(rdb *redis.Client, ttl time.Duration) *Responses {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Responses{rdb: rdb, ttl: ttl}
}

// Get unmarshals a cached response into dest, reporting whether a value was
// found. Transport errors count as a miss.
func (c *Responses) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache: corrupt entry for %s: %v", key, err)
		return false
	}
	return true
}

// Set stores a response; failures are logged and ignored.
func (c *Responses) Set(ctx context.Context, key string, val interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// FactCheckKey builds the cache key for a registry lookup.
func FactCheckKey(claim string) string {
	return "factcheck:" + hashKey(claim)
}

// NewsKey builds the cache key for an evidence search.
func NewsKey(claim string, max int) string {
	return fmt.Sprintf("news:%d:%s", max, hashKey(claim))
}

func hashKey(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
