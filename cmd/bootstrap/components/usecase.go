package components

import (
	"gift-occasions/internal/orchestrator"
	"gift-occasions/internal/pkg/clock"
	"gift-occasions/internal/usecase"
	"gift-occasions/internal/usecase/commands"
	"gift-occasions/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		func(s *orchestrator.Scheduler) commands.OccasionScheduler { return s },
		commands.NewOccasionCommands,
		queries.NewOccasionQueries,
	),
)
