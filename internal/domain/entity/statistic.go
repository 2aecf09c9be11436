// Package entity contains the core business objects of the project.
package entity

import "time"

// StatisticKind identifies the lifecycle event a statistic records.
type StatisticKind string

// Statistic kinds, one per lifecycle event.
const (
	StatisticCreated   StatisticKind = "created"
	StatisticDeleted   StatisticKind = "deleted"
	StatisticDismissed StatisticKind = "dismissed"
	StatisticMissed    StatisticKind = "missed"
	StatisticSnoozed   StatisticKind = "snoozed"
)

// Statistic is one append-only audit-log entry for an alarm lifecycle event.
// Hour, minute, and name are snapshotted at event time so later edits or
// deletion of the alarm never retroactively alter history; AlarmID is a
// nullable back-reference that the store sets to null when the alarm is
// deleted.
type Statistic struct {
	ID             int64         `json:"id"`                        // Auto-incrementing row ID.
	Kind           StatisticKind `json:"kind"`                      // The lifecycle event recorded.
	AlarmID        *int64        `json:"alarm_id"`                  // Owning alarm ID; null once the alarm is deleted.
	Timestamp      time.Time     `json:"timestamp"`                 // When the event happened.
	Hour           int           `json:"hour"`                      // Alarm hour at event time.
	Minute         int           `json:"minute"`                    // Alarm minute at event time.
	Name           string        `json:"name"`                      // Alarm name at event time.
	UsedNfc        *bool         `json:"used_nfc,omitempty"`        // Dismissed only: whether an NFC scan performed the dismissal.
	SnoozeDuration *int          `json:"snooze_duration,omitempty"` // Snoozed only: postponement in minutes.
}

// NewStatistic builds a statistic of the given kind with a point-in-time
// snapshot of the alarm's hour, minute, and name.
func NewStatistic(kind StatisticKind, alarm *Alarm, at time.Time) *Statistic {
	stat := &Statistic{
		Kind:      kind,
		Timestamp: at,
	}
	if alarm != nil {
		id := alarm.ID
		stat.AlarmID = &id
		stat.Hour = alarm.Hour
		stat.Minute = alarm.Minute
		stat.Name = alarm.Name
	}

	return stat
}

// WithUsedNfc attaches the dismissed-event payload.
func (s *Statistic) WithUsedNfc(usedNfc bool) *Statistic {
	s.UsedNfc = &usedNfc

	return s
}

// WithSnoozeDuration attaches the snoozed-event payload in minutes.
func (s *Statistic) WithSnoozeDuration(minutes int) *Statistic {
	s.SnoozeDuration = &minutes

	return s
}
