package usecase

import (
	"context"

	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/search"
)

type SubtitleUsecase struct {
	repo SubtitleRepository
}

func NewSubtitleUsecase(repo SubtitleRepository) *SubtitleUsecase {
	return &SubtitleUsecase{repo: repo}
}

func (uc *SubtitleUsecase) Get(ctx context.Context, id string) (*domain.Subtitle, error) {
	return uc.repo.LoadByID(ctx, id)
}

func (uc *SubtitleUsecase) Search(ctx context.Context, query, srtFile string, page, size int) ([]*domain.Subtitle, int64, error) {
	return uc.repo.Search(ctx, query, srtFile, page, size)
}

func (uc *SubtitleUsecase) TopTerms(ctx context.Context, field string, size int) ([]search.TermBucket, error) {
	return uc.repo.TopTerms(ctx, field, size)
}
