package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/infra/repository"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/orchestrator"
	"gift-occasions/internal/pkg/clock"
	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/jwt"

	"go.uber.org/fx"
)

var OrchestratorModule = fx.Module("orchestrator",
	fx.Provide(
		NewGateway,
		NewWorkflow,
		NewScheduler,
	),
	fx.Invoke(RegisterScheduler),
)

func NewGateway(cfg config.Config, notifications *client.NotificationClient, logger *slog.Logger) *notify.Gateway {
	return notify.NewGateway(notifications, cfg.Notify.MaxAttempts, logger)
}

func NewWorkflow(
	jwtService *jwt.Service,
	groups *client.GroupClient,
	users *client.UserClient,
	gateway *notify.Gateway,
	repo *repository.OccasionRepository,
	logger *slog.Logger,
) *orchestrator.Workflow {
	return orchestrator.NewWorkflow(jwtService, groups, users, gateway, repo, logger)
}

func NewScheduler(
	cfg config.Config,
	workflow *orchestrator.Workflow,
	repo *repository.OccasionRepository,
	clk clock.Clock,
	logger *slog.Logger,
) (*orchestrator.Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Notify.TimeZone)
	if err != nil {
		return nil, err
	}

	return orchestrator.NewScheduler(workflow, repo, clk, cfg.Notify.FireHour, loc, logger), nil
}

// RegisterScheduler reloads every persisted occasion when the process comes
// up and drains the job table on shutdown.
func RegisterScheduler(lc fx.Lifecycle, scheduler *orchestrator.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := scheduler.ReloadAll(ctx); err != nil {
				return err
			}
			logger.Info("occasion jobs reloaded")
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
