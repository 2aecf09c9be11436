package usecase

import (
	"context"

	"chime/internal/domain/entity"
)

// StatisticUsecase exposes read access to the append-only statistics log.
type StatisticUsecase interface {
	// ListStatistics retrieves statistics newest first, optionally filtered
	// by kind and/or alarm ID, with pagination.
	ListStatistics(ctx context.Context, kind *entity.StatisticKind, alarmID *int64, limit, offset int) ([]*entity.Statistic, error)

	// Summary returns the number of recorded events per statistic kind.
	Summary(ctx context.Context) (map[entity.StatisticKind]int64, error)
}
