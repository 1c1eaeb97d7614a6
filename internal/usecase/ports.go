package usecase

import (
	"context"

	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/search"
)

// SubtitleRepository defines retrieval of subtitle fragments.
type SubtitleRepository interface {
	FindMatches(ctx context.Context, phrase string, size int) ([]*domain.Subtitle, error)
	LoadByID(ctx context.Context, id string) (*domain.Subtitle, error)
	Search(ctx context.Context, query, srtFile string, page, size int) ([]*domain.Subtitle, int64, error)
	TopTerms(ctx context.Context, field string, size int) ([]search.TermBucket, error)
}

// PlaylistCache stores rendered playlists keyed by their request
// parameters. A miss is (found=false, nil error); errors are soft, the
// pipeline regenerates on any cache trouble.
type PlaylistCache interface {
	Get(ctx context.Context, term string, repeat, padding int) (string, bool, error)
	Set(ctx context.Context, term string, repeat, padding int, playlist string) error
}
