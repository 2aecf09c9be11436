// Package entity contains the core business objects of the project.
package entity

import "time"

// UnlimitedSnoozes is the MaxSnoozeCount sentinel meaning the snooze count is never enforced.
const UnlimitedSnoozes = -1

// DayMask is a bitset over the seven weekdays, bit 0 = Sunday through bit 6 = Saturday,
// indicating which days an alarm recurs on.
type DayMask uint8

// DayMaskAll has every weekday selected.
const DayMaskAll DayMask = 0x7F

// Contains reports whether the given weekday is selected.
func (m DayMask) Contains(day time.Weekday) bool {
	return m&(1<<uint(day)) != 0
}

// With returns a copy of the mask with the given weekday selected.
func (m DayMask) With(day time.Weekday) DayMask {
	return m | (1 << uint(day))
}

// Without returns a copy of the mask with the given weekday cleared.
func (m DayMask) Without(day time.Weekday) DayMask {
	return m &^ (1 << uint(day))
}

// IsEmpty reports whether no weekday is selected.
func (m DayMask) IsEmpty() bool {
	return m == 0
}

// Days lists the selected weekdays in Sunday-first order.
func (m DayMask) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if m.Contains(day) {
			days = append(days, day)
		}
	}

	return days
}

// Alarm represents a persisted alarm record. The zero ID marks an alarm that has
// not been stored yet; the repository assigns the row ID on creation.
type Alarm struct {
	ID                 int64     `json:"id"`                   // Auto-incrementing row ID, 0 for a new alarm.
	Enabled            bool      `json:"enabled"`              // Whether the alarm is armed with the scheduler.
	Hour               int       `json:"hour"`                 // Hour of day, 0-23.
	Minute             int       `json:"minute"`               // Minute of hour, 0-59.
	DayMask            DayMask   `json:"day_mask"`             // Weekdays the alarm recurs on; empty = one-shot at the next hour/minute.
	Repeat             bool      `json:"repeat"`               // Whether the alarm re-arms itself after firing.
	UseNfc             bool      `json:"use_nfc"`              // Whether dismissal is gated on an NFC tag scan.
	NfcTagID           string    `json:"nfc_tag_id"`           // Required tag ID; empty means any scanned tag is accepted.
	MediaPath          string    `json:"media_path"`           // Reference to the media played while ringing.
	Volume             int       `json:"volume"`               // Playback volume, 0-100.
	Vibrate            bool      `json:"vibrate"`              // Whether the device vibrates while ringing.
	Name               string    `json:"name"`                 // Free-text alarm name.
	MaxSnoozeCount     int       `json:"max_snooze_count"`     // Maximum snoozes per ringing cycle, UnlimitedSnoozes for no limit.
	SnoozeDuration     int       `json:"snooze_duration"`      // Snooze postponement in minutes.
	AutoDismissTimeout int       `json:"auto_dismiss_timeout"` // Minutes until an unattended ring is auto-dismissed, 0 = never.
	DismissEarlyWindow int       `json:"dismiss_early_window"` // Minutes before the fire time during which early dismissal is offered.
	IsActive           bool      `json:"is_active"`            // Whether the alarm is currently ringing.
	CreatedAt          time.Time `json:"created_at"`           // Timestamp of when this record was created.
	UpdatedAt          time.Time `json:"updated_at"`           // Timestamp of the last modification.
}

// IsOneShot reports whether the alarm fires once and then disables itself.
// The repeat flag alone decides: a non-repeating alarm disables after a
// terminal transition however many days it has selected, and the day
// selection is preserved either way so re-enabling restores the schedule.
// Repeating alarms are never auto-disabled.
func (a *Alarm) IsOneShot() bool {
	return !a.Repeat
}

// CanDismissWithTag reports whether the scanned tag satisfies the NFC gate.
// An alarm without the NFC requirement accepts any dismissal; an empty stored
// tag ID means any scanned tag is accepted.
func (a *Alarm) CanDismissWithTag(scannedTagID string) bool {
	if !a.UseNfc {
		return true
	}
	if a.NfcTagID == "" {
		return true
	}

	return a.NfcTagID == scannedTagID
}

// CanSnooze reports whether one more snooze is allowed given the number of
// snoozes already taken in the current ringing cycle.
func (a *Alarm) CanSnooze(snoozeCount int) bool {
	if a.MaxSnoozeCount < 0 {
		return true
	}

	return snoozeCount+1 <= a.MaxSnoozeCount
}

// SnoozePeriod returns the snooze postponement as a duration.
func (a *Alarm) SnoozePeriod() time.Duration {
	return time.Duration(a.SnoozeDuration) * time.Minute
}

// AutoDismissPeriod returns the auto-dismiss timeout as a duration, or zero
// when the alarm never auto-dismisses.
func (a *Alarm) AutoDismissPeriod() time.Duration {
	return time.Duration(a.AutoDismissTimeout) * time.Minute
}

// NextOccurrence computes the next wall-clock time the alarm should fire,
// strictly after now at second precision. A candidate equal to now advances to
// the next valid day rather than firing immediately. With an empty day mask the
// alarm targets the next hour/minute slot, today or tomorrow; with a day mask
// the search wraps the week, so the result is at most seven days out.
func (a *Alarm) NextOccurrence(now time.Time) time.Time {
	floor := now.Truncate(time.Second)
	candidate := time.Date(now.Year(), now.Month(), now.Day(), a.Hour, a.Minute, 0, 0, now.Location())

	if a.DayMask.IsEmpty() {
		if !candidate.After(floor) {
			candidate = candidate.AddDate(0, 0, 1)
		}

		return candidate
	}

	for offset := 0; offset <= 7; offset++ {
		slot := candidate.AddDate(0, 0, offset)
		if !a.DayMask.Contains(slot.Weekday()) {
			continue
		}
		if slot.After(floor) {
			return slot
		}
	}

	// Unreachable: a non-empty mask always matches within eight days.
	return candidate.AddDate(0, 0, 7)
}
