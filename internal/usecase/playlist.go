package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/lingoclip/lingoclip"
	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/manifest"
)

var tracer = otel.Tracer("playlist")

// matchLimit caps how many distinct hits feed one playlist.
const matchLimit = 10

// PlaylistUsecase turns a spoken phrase into a streamable playlist:
// search hits are duplicated by the repeat count, wrapped with padding
// neighbors, laid out on a contiguous timeline and rendered to m3u8.
type PlaylistUsecase struct {
	subs      SubtitleRepository
	cache     PlaylistCache
	mediaBase string
}

func NewPlaylistUsecase(subs SubtitleRepository, cache PlaylistCache, mediaBase string) *PlaylistUsecase {
	return &PlaylistUsecase{
		subs:      subs,
		cache:     cache,
		mediaBase: mediaBase,
	}
}

// Build assembles the playlist for a phrase. It either returns a
// complete, valid manifest or fails entirely; a missing padding neighbor
// aborts the whole request rather than truncating the pad.
func (uc *PlaylistUsecase) Build(ctx context.Context, term string, repeat, padding int) (string, error) {
	ctx, span := tracer.Start(ctx, "Playlist.Build")
	defer span.End()

	if repeat < 1 {
		repeat = 1
	}
	if padding < 0 {
		padding = 0
	}

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, term, repeat, padding)
		if err != nil {
			slog.Warn("playlist cache read failed",
				slog.String("error", err.Error()),
				slog.String("term", term),
			)
		} else if ok {
			return cached, nil
		}
	}

	subs, err := uc.subs.FindMatches(ctx, term, matchLimit)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	var seq domain.Sequence
	for _, sub := range subs {
		for range repeat {
			seq.Append(domain.SegmentFromSubtitle(sub))
		}
	}

	padded, err := uc.pad(ctx, seq, padding)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	refs := make([]manifest.Ref, 0, padded.Len())
	for _, seg := range padded.Segments {
		refs = append(refs, manifest.Ref{SrtFile: seg.Path, Index: seg.Index})
	}
	playlist := manifest.Render(uc.mediaBase, refs)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, term, repeat, padding, playlist); err != nil {
			slog.Warn("playlist cache write failed",
				slog.String("error", err.Error()),
				slog.String("term", term),
			)
		}
	}
	return playlist, nil
}

// pad splices up to padding neighbors before each matched segment and up
// to padding-1 after it, fetched by composite id in source order. Leading
// neighbors iterate index-padding .. index-1, never below zero. The
// rebuilt sequence is recalculated once so relative times stay gapless.
func (uc *PlaylistUsecase) pad(ctx context.Context, seq domain.Sequence, padding int) (domain.Sequence, error) {
	var out domain.Sequence
	for _, seg := range seq.Segments {
		for i := padding; i > 0; i-- {
			if seg.Index-i < 0 {
				continue
			}
			neighbor, err := uc.loadNeighbor(ctx, seg.Path, seg.Index-i)
			if err != nil {
				return out, err
			}
			out.Append(neighbor)
		}
		out.Append(seg)
		for i := 1; i < padding; i++ {
			neighbor, err := uc.loadNeighbor(ctx, seg.Path, seg.Index+i)
			if err != nil {
				return out, err
			}
			out.Append(neighbor)
		}
	}
	out.Recalculate()
	return out, nil
}

func (uc *PlaylistUsecase) loadNeighbor(ctx context.Context, path string, index int) (domain.Segment, error) {
	id := lingoclip.ComposeSubtitleID(path, index)
	sub, err := uc.subs.LoadByID(ctx, id)
	if err != nil {
		return domain.Segment{}, errors.Wrapf(err, "padding neighbor %s", id)
	}
	return domain.SegmentFromSubtitle(sub), nil
}
