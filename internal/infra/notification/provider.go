package notification

import (
	"context"
	"log/slog"

	"chime/config"
	"chime/internal/domain/constants"
	"chime/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier is used when no notification channel is configured.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Notify(_ context.Context, title, _ string) error {
	n.logger.Debug("[NoopNotifier] Notification channel disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notify
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Notifications not configured, using no-op notifier")

		return &noopNotifier{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.NotifyProviderPushover:
		if cfg.Pushover == nil || cfg.Pushover.Token == "" || cfg.Pushover.User == "" {
			return nil, errors.New("pushover token and user are required for pushover provider")
		}
		logger.Info("Using Pushover notifier")

		return NewPushoverService(cfg.Pushover.Token, cfg.Pushover.User), nil

	case constants.NotifyProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" || cfg.Firebase.DeviceToken == "" {
			return nil, errors.New("firebase credentials path and device token are required for fcm provider")
		}
		logger.Info("Using FCM notifier",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFCMService(params.Ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken)

	default:
		return nil, errors.Errorf("unknown notify provider: %s", cfg.Provider)
	}
}
