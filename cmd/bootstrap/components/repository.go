package components

import (
	repo_impl "gift-occasions/internal/infra/repository"
	"gift-occasions/internal/usecase/commands"
	"gift-occasions/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewOccasionRepository,
		// Interface bindings share the single repository instance
		func(r *repo_impl.OccasionRepository) commands.OccasionRepository { return r },
		func(r *repo_impl.OccasionRepository) queries.OccasionReadStore { return r },
	),
)
