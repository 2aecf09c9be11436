package postgres

import (
	"context"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statisticRepository implements the repository.StatisticRepository interface.
type statisticRepository struct {
	db *gorm.DB
}

// NewStatisticRepository is the constructor for statisticRepository.
func NewStatisticRepository(db *gorm.DB) repository.StatisticRepository {
	return &statisticRepository{
		db: db,
	}
}

// CreateStatistic appends one statistic row.
func (repo *statisticRepository) CreateStatistic(ctx context.Context, stat *entity.Statistic) error {
	statM := fromStatisticDomain(stat)

	if err := repo.db.WithContext(ctx).Create(statM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAlarmNotFound.WrapMessage("statistic references a missing alarm")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required statistic information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create statistic")
	}

	// Update the entity with generated values
	stat.ID = statM.ID

	return nil
}

// FindStatistics retrieves statistics newest first with optional filters and pagination.
func (repo *statisticRepository) FindStatistics(ctx context.Context, kind *entity.StatisticKind, alarmID *int64, limit, offset int) ([]*entity.Statistic, error) {
	var statModels []*model.StatisticModel

	query := repo.db.WithContext(ctx).Order("timestamp DESC, id DESC")
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}
	if alarmID != nil {
		query = query.Where("alarm_id = ?", *alarmID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&statModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find statistics")
	}

	stats := make([]*entity.Statistic, 0, len(statModels))
	for _, statM := range statModels {
		stats = append(stats, toStatisticDomain(statM))
	}

	return stats, nil
}

// CountByKind returns the number of rows recorded per statistic kind.
func (repo *statisticRepository) CountByKind(ctx context.Context) (map[entity.StatisticKind]int64, error) {
	var rows []struct {
		Kind  string
		Total int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.StatisticModel{}).
		Select("kind, COUNT(*) AS total").
		Group("kind").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count statistics by kind")
	}

	counts := make(map[entity.StatisticKind]int64, len(rows))
	for _, row := range rows {
		counts[entity.StatisticKind(row.Kind)] = row.Total
	}

	return counts, nil
}

// DeleteAllStatistics bulk-clears the log.
func (repo *statisticRepository) DeleteAllStatistics(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.StatisticModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear statistics")
	}

	return nil
}

// --- Mapper Functions ---

// toStatisticDomain converts a GORM StatisticModel to a domain Statistic entity.
func toStatisticDomain(data *model.StatisticModel) *entity.Statistic {
	if data == nil {
		return nil
	}

	return &entity.Statistic{
		ID:             data.ID,
		Kind:           entity.StatisticKind(data.Kind),
		AlarmID:        data.AlarmID,
		Timestamp:      data.Timestamp,
		Hour:           data.Hour,
		Minute:         data.Minute,
		Name:           data.Name,
		UsedNfc:        data.UsedNfc,
		SnoozeDuration: data.SnoozeDuration,
	}
}

// fromStatisticDomain converts a domain Statistic entity to a GORM StatisticModel.
func fromStatisticDomain(data *entity.Statistic) *model.StatisticModel {
	if data == nil {
		return nil
	}

	return &model.StatisticModel{
		ID:             data.ID,
		Kind:           string(data.Kind),
		AlarmID:        data.AlarmID,
		Timestamp:      data.Timestamp,
		Hour:           data.Hour,
		Minute:         data.Minute,
		Name:           data.Name,
		UsedNfc:        data.UsedNfc,
		SnoozeDuration: data.SnoozeDuration,
	}
}
