package postgres

import (
	"context"
	"testing"
	"time"

	"chime/config"
	"chime/internal/domain/entity"
	"chime/internal/infra/persistence/model"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newIntegrationDB connects to the configured Postgres instance, skipping the
// test when no database is reachable.
func newIntegrationDB(t *testing.T) *gorm.DB {
	cfg, err := config.New()
	if err != nil {
		t.Skipf("config not available: %v", err)
	}
	if cfg.Postgres == nil {
		t.Skip("postgres not configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		t.Skipf("postgres not reachable: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("postgres not reachable: %v", err)
	}

	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	require.NoError(t, db.AutoMigrate(&model.AlarmModel{}, &model.StatisticModel{}))

	return db
}

func TestStatisticRepository_RowsSurviveAlarmDeletion_Integration(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()

	alarmRepo := NewAlarmRepository(db)
	statRepo := NewStatisticRepository(db)

	// Unique name so the assertion is immune to rows from earlier runs.
	name := "survives-" + uuid.New().String()
	alarm := &entity.Alarm{Enabled: true, Hour: 6, Minute: 45, Name: name}
	require.NoError(t, alarmRepo.CreateAlarm(ctx, alarm))

	at := time.Now().UTC().Truncate(time.Second)
	kinds := []entity.StatisticKind{
		entity.StatisticCreated,
		entity.StatisticSnoozed,
		entity.StatisticSnoozed,
		entity.StatisticDismissed,
		entity.StatisticDeleted,
	}
	for i, kind := range kinds {
		stat := entity.NewStatistic(kind, alarm, at.Add(time.Duration(i)*time.Second))
		require.NoError(t, statRepo.CreateStatistic(ctx, stat))
	}

	require.NoError(t, alarmRepo.DeleteAlarm(ctx, alarm.ID))

	all, err := statRepo.FindStatistics(ctx, nil, nil, 0, 0)
	require.NoError(t, err)

	var survivors []*entity.Statistic
	for _, stat := range all {
		if stat.Name == name {
			survivors = append(survivors, stat)
		}
	}

	require.Len(t, survivors, len(kinds))
	for _, stat := range survivors {
		assert.Nil(t, stat.AlarmID, "alarm back-reference must be nulled, not cascaded")
		assert.Equal(t, 6, stat.Hour)
		assert.Equal(t, 45, stat.Minute)
		assert.Equal(t, name, stat.Name)
	}

	// Filtering by the deleted alarm's old ID finds nothing; the rows are
	// reachable only as history.
	byAlarm, err := statRepo.FindStatistics(ctx, nil, &alarm.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, byAlarm)
}
