package data

import (
	"github.com/redis/go-redis/v9"
)

// OpenRedis parses a Redis URL and returns a client. The response cache is
// optional; callers treat an error the same as an empty URL and run uncached.
func OpenRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}
