package commands

import (
	"context"
	"errors"
	"log/slog"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra"
	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOccasionNotFound        = errs.New("occasion not found")
	ErrInvalidOccasion         = errs.New("invalid occasion")
	ErrUpstreamLookupFailed    = errs.New("upstream lookup failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type OccasionRepository interface {
	Create(ctx context.Context, occ occasion.Occasion) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*occasion.Occasion, error)
	Update(ctx context.Context, occ occasion.Occasion) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type OccasionScheduler interface {
	Schedule(occ occasion.Occasion) error
	Cancel(id uuid.UUID)
	RunNow(ctx context.Context, occ occasion.Occasion) (*notify.Attempt, error)
}

type OccasionCommands interface {
	Create(ctx context.Context, occ occasion.Occasion) (uuid.UUID, error)
	Update(ctx context.Context, occ occasion.Occasion) error
	Delete(ctx context.Context, id uuid.UUID) error
	Run(ctx context.Context, id uuid.UUID) (*notify.Attempt, error)
}

type occasionCommandsImpl struct {
	repo      OccasionRepository
	scheduler OccasionScheduler
	logger    *slog.Logger
}

func NewOccasionCommands(repo OccasionRepository, scheduler OccasionScheduler, logger *slog.Logger) OccasionCommands {
	return &occasionCommandsImpl{
		repo:      repo,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Create persists a new occasion and registers its job. A scheduling failure
// rolls the record back so create aborts cleanly instead of leaving an
// unscheduled orphan.
func (c *occasionCommandsImpl) Create(ctx context.Context, occ occasion.Occasion) (uuid.UUID, error) {
	if err := occ.Validate(); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidOccasion)
	}

	id, err := c.repo.Create(ctx, occ)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	occ.ID = id

	if err := c.scheduler.Schedule(occ); err != nil {
		if _, delErr := c.repo.Delete(ctx, id); delErr != nil {
			c.logger.Error("failed to roll back unschedulable occasion",
				"occasion_id", id.String(), "error", delErr.Error())
		}
		return uuid.Nil, errs.Mark(err, ErrInvalidOccasion)
	}

	return id, nil
}

// Update replaces the stored record and reschedules: the old job is
// cancelled before the new one is registered, so at most one job per ID
// stays live.
func (c *occasionCommandsImpl) Update(ctx context.Context, occ occasion.Occasion) error {
	if err := occ.Validate(); err != nil {
		return errs.Mark(err, ErrInvalidOccasion)
	}

	if _, err := c.repo.FindByID(ctx, occ.ID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOccasionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.scheduler.Cancel(occ.ID)

	if err := c.repo.Update(ctx, occ); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.scheduler.Schedule(occ); err != nil {
		return errs.Mark(err, ErrInvalidOccasion)
	}
	return nil
}

func (c *occasionCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	c.scheduler.Cancel(id)

	deleted, err := c.repo.Delete(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		return ErrOccasionNotFound
	}
	return nil
}

// Run executes the notification workflow out of band, cancelling any
// pending timer for the occasion first.
func (c *occasionCommandsImpl) Run(ctx context.Context, id uuid.UUID) (*notify.Attempt, error) {
	occ, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOccasionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	attempt, err := c.scheduler.RunNow(ctx, *occ)
	if err != nil {
		if errors.Is(err, client.ErrUpstream) {
			return nil, errs.Mark(err, ErrUpstreamLookupFailed)
		}
		return nil, err
	}
	return attempt, nil
}
