package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("playlistcache")

// PlaylistCacheService keeps rendered playlists in redis. Manifests are
// deterministic for identical input, so the key is a hash of the request
// parameters.
type PlaylistCacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPlaylistCacheService(rdb *redis.Client, ttl time.Duration) *PlaylistCacheService {
	return &PlaylistCacheService{
		rdb: rdb,
		ttl: ttl,
	}
}

func cacheKey(term string, repeat, padding int) string {
	sum := xxh3.HashString(fmt.Sprintf("%s|%d|%d", term, repeat, padding))
	return fmt.Sprintf("playlist:%016x", sum)
}

func (s *PlaylistCacheService) Get(ctx context.Context, term string, repeat, padding int) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "PlaylistCache.Get")
	defer span.End()

	val, err := s.rdb.Get(ctx, cacheKey(term, repeat, padding)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		span.RecordError(err)
		return "", false, err
	}
	return val, true, nil
}

func (s *PlaylistCacheService) Set(ctx context.Context, term string, repeat, padding int, playlist string) error {
	ctx, span := tracer.Start(ctx, "PlaylistCache.Set")
	defer span.End()

	err := s.rdb.Set(ctx, cacheKey(term, repeat, padding), playlist, s.ttl).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
