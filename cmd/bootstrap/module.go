package bootstrap

import (
	"gift-occasions/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ClientModule,
	OrchestratorModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
