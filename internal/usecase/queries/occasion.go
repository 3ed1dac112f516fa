package queries

import (
	"context"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra"
	"gift-occasions/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOccasionNotFound = errs.New("occasion not found")

type OccasionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*occasion.Occasion, error)
	FindByGroup(ctx context.Context, groupID string) ([]occasion.Occasion, error)
}

type OccasionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*occasion.Occasion, error)
	ListByGroup(ctx context.Context, groupID string) ([]occasion.Occasion, error)
}

type occasionQueriesImpl struct {
	store OccasionReadStore
}

func NewOccasionQueries(store OccasionReadStore) OccasionQueries {
	return &occasionQueriesImpl{
		store: store,
	}
}

func (q *occasionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*occasion.Occasion, error) {
	occ, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOccasionNotFound
		}
		return nil, err
	}
	return occ, nil
}

func (q *occasionQueriesImpl) ListByGroup(ctx context.Context, groupID string) ([]occasion.Occasion, error) {
	return q.store.FindByGroup(ctx, groupID)
}
