package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the client backing the rendered-playlist cache and
// verifies the connection once at startup.
func NewRedis(addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
