package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/lingoclip/lingoclip"
	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/search"
)

// matchThreshold keeps playlist hits short: fragments whose span is this
// many seconds or longer are skipped when matching a phrase.
const matchThreshold = 5

// SubtitleRepository retrieves and persists subtitle fragments through
// the document mapper. Neighbor lookups during context padding hit the
// same ids repeatedly across requests, so direct loads go through a
// short-lived in-process cache.
type SubtitleRepository struct {
	mapper *search.Mapper[*domain.Subtitle]
	cache  *cache.Cache
}

func NewSubtitleRepository(backend search.Backend) *SubtitleRepository {
	return &SubtitleRepository{
		mapper: search.NewMapper(backend, domain.SubtitleSchema, domain.NewSubtitle),
		cache:  cache.New(10*time.Minute, 15*time.Minute),
	}
}

// FindMatches runs a free-text phrase query restricted to short fragments,
// returning up to size hits in relevance order.
func (r *SubtitleRepository) FindMatches(ctx context.Context, phrase string, size int) ([]*domain.Subtitle, error) {
	resp, err := r.mapper.Find(ctx, search.FindOptions{
		QueryString: phrase,
		Query:       search.DurationUnder(matchThreshold),
		Size:        size,
	})
	if err != nil {
		return nil, errors.Wrap(err, "find matches")
	}
	return resp.Items, nil
}

// LoadByID fetches one fragment by composite id, bypassing the
// soft-delete filter.
func (r *SubtitleRepository) LoadByID(ctx context.Context, id string) (*domain.Subtitle, error) {
	if cached, ok := r.cache.Get(id); ok {
		return cached.(*domain.Subtitle), nil
	}
	sub, err := r.mapper.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(id, sub, cache.DefaultExpiration)
	return sub, nil
}

// Search pages through fragments matching a free-text query, optionally
// scoped to one source file.
func (r *SubtitleRepository) Search(ctx context.Context, query, srtFile string, page, size int) ([]*domain.Subtitle, int64, error) {
	opts := search.FindOptions{
		QueryString: query,
		Page:        page,
		Size:        size,
	}
	if srtFile != "" {
		opts.Fields = map[string]any{"srt_file": srtFile}
	}
	resp, err := r.mapper.Find(ctx, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "search subtitles")
	}
	return resp.Items, resp.Count, nil
}

// TopTerms surfaces the most frequent values of a field across the index.
func (r *SubtitleRepository) TopTerms(ctx context.Context, field string, size int) ([]search.TermBucket, error) {
	return r.mapper.TopTerms(ctx, field, size)
}

// Save persists one fragment under its composite id so re-ingestion
// upserts instead of duplicating.
func (r *SubtitleRepository) Save(ctx context.Context, sub *domain.Subtitle) error {
	if sub.Meta().ID == "" {
		sub.Meta().ID = lingoclip.ComposeSubtitleID(sub.SrtFile, sub.Index)
	}
	return r.mapper.Save(ctx, sub)
}
