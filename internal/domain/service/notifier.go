package service

import "context"

// Notifier delivers a user-visible notification, such as the missed-alarm
// message sent when an unattended ring times out.
type Notifier interface {
	// Notify sends a single notification with the given title and body.
	Notify(ctx context.Context, title, body string) error
}
