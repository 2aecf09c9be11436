package service

import (
	"context"
	"time"
)

// Alarm lifecycle event kinds consumed by the notification worker.
const (
	EventRinging   = "ringing"
	EventDismissed = "dismissed"
	EventSnoozed   = "snoozed"
	EventMissed    = "missed"
)

// AlarmEvent represents a lifecycle state change to be processed by the
// notification worker. It snapshots the alarm fields the worker needs so the
// worker never reads the alarm store.
type AlarmEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Kind           string    `json:"kind"`
	AlarmID        int64     `json:"alarm_id"`
	Name           string    `json:"name"`
	Hour           int       `json:"hour"`
	Minute         int       `json:"minute"`
	FireAt         time.Time `json:"fire_at,omitempty"`          // Snoozed only: the re-armed fire time.
	UsedNfc        bool      `json:"used_nfc,omitempty"`         // Dismissed only.
	SnoozeDuration int       `json:"snooze_duration,omitempty"`  // Snoozed only, in minutes.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlarmEvent publishes an alarm lifecycle event for async processing
	PublishAlarmEvent(ctx context.Context, event *AlarmEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
