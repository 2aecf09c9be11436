package impl

import (
	"context"
	"log/slog"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/errors"
	"chime/internal/usecase"
)

const defaultStatisticsLimit = 100

type statisticService struct {
	statRepo repository.StatisticRepository
	logger   *slog.Logger
}

// NewStatisticService creates a new statistic service instance
func NewStatisticService(
	statRepo repository.StatisticRepository,
	logger *slog.Logger,
) usecase.StatisticUsecase {
	return &statisticService{
		statRepo: statRepo,
		logger:   logger,
	}
}

// ListStatistics retrieves statistics newest first with optional filters.
func (s *statisticService) ListStatistics(ctx context.Context, kind *entity.StatisticKind, alarmID *int64, limit, offset int) ([]*entity.Statistic, error) {
	if limit <= 0 {
		limit = defaultStatisticsLimit
	}
	if offset < 0 {
		offset = 0
	}

	stats, err := s.statRepo.FindStatistics(ctx, kind, alarmID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list statistics")
	}

	return stats, nil
}

// Summary returns the number of recorded events per statistic kind.
func (s *statisticService) Summary(ctx context.Context) (map[entity.StatisticKind]int64, error) {
	counts, err := s.statRepo.CountByKind(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize statistics")
	}

	return counts, nil
}
