package bootstrap

import (
	"time"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	serviceTokenDuration, err := time.ParseDuration(cfg.JWT.ServiceTokenDuration)
	if err != nil {
		panic("invalid JWT_SERVICE_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, serviceTokenDuration)
}
