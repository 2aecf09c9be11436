package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatistic_SnapshotsAlarm(t *testing.T) {
	at := time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC)
	alarm := &Alarm{ID: 42, Hour: 7, Minute: 0, Name: "Workday"}

	stat := NewStatistic(StatisticDismissed, alarm, at)

	require.NotNil(t, stat.AlarmID)
	assert.Equal(t, int64(42), *stat.AlarmID)
	assert.Equal(t, StatisticDismissed, stat.Kind)
	assert.Equal(t, at, stat.Timestamp)
	assert.Equal(t, 7, stat.Hour)
	assert.Equal(t, 0, stat.Minute)
	assert.Equal(t, "Workday", stat.Name)
	assert.Nil(t, stat.UsedNfc)
	assert.Nil(t, stat.SnoozeDuration)
}

func TestNewStatistic_NilAlarm(t *testing.T) {
	stat := NewStatistic(StatisticDeleted, nil, time.Now())

	assert.Nil(t, stat.AlarmID)
	assert.Empty(t, stat.Name)
}

func TestStatistic_PayloadBuilders(t *testing.T) {
	stat := NewStatistic(StatisticSnoozed, &Alarm{ID: 1}, time.Now()).WithSnoozeDuration(5)
	require.NotNil(t, stat.SnoozeDuration)
	assert.Equal(t, 5, *stat.SnoozeDuration)

	stat = NewStatistic(StatisticDismissed, &Alarm{ID: 1}, time.Now()).WithUsedNfc(true)
	require.NotNil(t, stat.UsedNfc)
	assert.True(t, *stat.UsedNfc)
}
