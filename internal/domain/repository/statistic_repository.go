// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"chime/internal/domain/entity"
)

// StatisticRepository defines the interface for the append-only statistics log.
// Rows are never individually updated or deleted; the only destructive
// operation is the bulk clear used by schema migrations.
type StatisticRepository interface {
	// CreateStatistic appends one statistic row.
	CreateStatistic(ctx context.Context, stat *entity.Statistic) error

	// FindStatistics retrieves statistics newest first, optionally filtered by
	// kind and/or owning alarm ID, with pagination.
	FindStatistics(ctx context.Context, kind *entity.StatisticKind, alarmID *int64, limit, offset int) ([]*entity.Statistic, error)

	// CountByKind returns the number of rows recorded per statistic kind.
	CountByKind(ctx context.Context) (map[entity.StatisticKind]int64, error)

	// DeleteAllStatistics bulk-clears the log.
	DeleteAllStatistics(ctx context.Context) error
}
