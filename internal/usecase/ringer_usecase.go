package usecase

import (
	"context"
	"time"

	"chime/internal/domain/entity"
)

// SnoozeResult reports the outcome of a successful snooze.
type SnoozeResult struct {
	AlarmID     int64     `json:"alarm_id"`
	SnoozeCount int       `json:"snooze_count"`
	FireAt      time.Time `json:"fire_at"`
}

// RingerUsecase owns the state of a ringing alarm from trigger to resolution:
// dismiss, snooze, or auto-dismiss timeout.
type RingerUsecase interface {
	// HandleTrigger transitions the alarm into the ringing state: marks it
	// active, immediately arms the next occurrence of a repeating alarm, and
	// starts the auto-dismiss timer. Stale triggers for deleted or disabled
	// alarms are cancelled silently.
	HandleTrigger(ctx context.Context, alarmID int64) error

	// Dismiss resolves a ringing alarm by user action. When the alarm
	// requires NFC, the scanned tag must match the stored tag ID (an empty
	// stored ID accepts any tag); a mismatch is rejected and the alarm keeps
	// ringing.
	Dismiss(ctx context.Context, alarmID int64, scannedTagID string) (*entity.Alarm, error)

	// Snooze postpones a ringing alarm by its snooze duration, enforcing the
	// per-cycle snooze limit. A rejection leaves the counter and the ringing
	// state unchanged.
	Snooze(ctx context.Context, alarmID int64) (*SnoozeResult, error)

	// StopSessions stops all in-memory auto-dismiss timers; used on shutdown
	// before the scheduler force-resolves active alarms.
	StopSessions()
}
