package bootstrap

import (
	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/pkg/config"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		NewGroupClient,
		NewUserClient,
		NewNotificationClient,
	),
)

func NewGroupClient(cfg config.Config) *client.GroupClient {
	return client.NewGroupClient(cfg.Upstream)
}

func NewUserClient(cfg config.Config) *client.UserClient {
	return client.NewUserClient(cfg.Upstream)
}

func NewNotificationClient(cfg config.Config) *client.NotificationClient {
	return client.NewNotificationClient(cfg.Upstream)
}
