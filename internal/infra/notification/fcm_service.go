// Package notification contains Notifier implementations for user-visible pushes.
package notification

import (
	"context"
	"fmt"

	"chime/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmService struct {
	client      *messaging.Client
	deviceToken string
}

// NewFCMService creates a Notifier that delivers through Firebase Cloud
// Messaging to the configured device token.
func NewFCMService(ctx context.Context, credentialsPath, deviceToken string) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmService{
		client:      client,
		deviceToken: deviceToken,
	}, nil
}

// Notify sends a single push notification to the configured device.
func (s *fcmService) Notify(ctx context.Context, title, body string) error {
	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
