package main

import (
	"context"
	"log/slog"
	"os"

	"chime/config"
	"chime/internal/delivery"
	"chime/internal/delivery/http"
	"chime/internal/delivery/http/router/handler"
	"chime/internal/domain/lifecycle"
	"chime/internal/domain/service"
	logs "chime/internal/infra/log"
	"chime/internal/infra/persistence/postgres"
	"chime/internal/infra/pubsub"
	"chime/internal/infra/snooze"
	"chime/internal/infra/trigger"
	"chime/internal/usecase"
	"chime/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			bindTrigger,
			restoreScheduler,
			registerShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlarmRepository,
			postgres.NewStatisticRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			trigger.NewRegistry,
			func(registry *trigger.Registry) service.WakeTriggerService { return registry },
			snooze.NewStore,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSchedulerService,
			impl.NewRingerService,
			impl.NewAlarmService,
			impl.NewStatisticService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlarmHandler,
			handler.NewRingHandler,
			handler.NewStatisticHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bindTrigger connects fired wake triggers to the ringer. The registry is
// constructed before the ringer, so the callback is attached afterwards.
func bindTrigger(registry *trigger.Registry, ringerUC usecase.RingerUsecase, logger *slog.Logger) {
	registry.Bind(func(ctx context.Context, alarmID int64) {
		if err := ringerUC.HandleTrigger(ctx, alarmID); err != nil {
			logger.Error("Failed to handle wake trigger",
				slog.Int64("alarm_id", alarmID),
				slog.Any("error", err))
		}
	})
}

// restoreScheduler re-arms every enabled alarm on boot; wake-trigger
// registrations do not survive a restart.
func restoreScheduler(lc fx.Lifecycle, schedulerUC usecase.SchedulerUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return schedulerUC.RestoreAll(ctx)
		},
	})
}

// registerShutdown force-resolves ringing alarms and stops all timers when the
// process goes down, so a restart never resumes into a phantom active state.
func registerShutdown(lc fx.Lifecycle, registry *trigger.Registry, schedulerUC usecase.SchedulerUsecase, ringerUC usecase.RingerUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			ringerUC.StopSessions()
			if err := schedulerUC.CancelAllActive(stopCtx); err != nil {
				return err
			}
			registry.Shutdown()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
