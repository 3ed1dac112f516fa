package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OccasionRepository is the persistent store behind the orchestrator.
// Contributions are kept inline as a JSONB document; the record is always
// read and replaced as a whole, matching the scheduler's snapshot semantics.
type OccasionRepository struct {
	db *pgxpool.Pool
}

func NewOccasionRepository(db *pgxpool.Pool) *OccasionRepository {
	return &OccasionRepository{
		db: db,
	}
}

const occasionColumns = `id, occasion_date, group_id, name, interval, organizer_id, recipient_id, contributions`

func (r *OccasionRepository) Create(ctx context.Context, occ occasion.Occasion) (uuid.UUID, error) {
	contributions, err := json.Marshal(occ.Contributions)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode contributions", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx,
		`INSERT INTO occasions (occasion_date, group_id, name, interval, organizer_id, recipient_id, contributions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		occ.Date, occ.GroupID, occ.Name, occ.Interval, occ.OrganizerID, occ.RecipientID, contributions,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create occasion", err)
	}
	return id, nil
}

func (r *OccasionRepository) FindByID(ctx context.Context, id uuid.UUID) (*occasion.Occasion, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+occasionColumns+` FROM occasions WHERE id = $1`, id)

	occ, err := scanOccasion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("occasion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find occasion by ID", err)
	}
	return occ, nil
}

func (r *OccasionRepository) FindByGroup(ctx context.Context, groupID string) ([]occasion.Occasion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+occasionColumns+` FROM occasions WHERE group_id = $1 ORDER BY occasion_date`, groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occasions by group", err)
	}
	defer rows.Close()

	return collectOccasions(rows)
}

// LoadAll feeds the startup reload pass.
func (r *OccasionRepository) LoadAll(ctx context.Context) ([]occasion.Occasion, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+occasionColumns+` FROM occasions ORDER BY occasion_date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occasions", err)
	}
	defer rows.Close()

	return collectOccasions(rows)
}

// Update replaces the stored record as a whole.
func (r *OccasionRepository) Update(ctx context.Context, occ occasion.Occasion) error {
	contributions, err := json.Marshal(occ.Contributions)
	if err != nil {
		return infra.WrapRepoErr("failed to encode contributions", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE occasions
		 SET occasion_date = $2, group_id = $3, name = $4, interval = $5,
		     organizer_id = $6, recipient_id = $7, contributions = $8
		 WHERE id = $1`,
		occ.ID, occ.Date, occ.GroupID, occ.Name, occ.Interval, occ.OrganizerID, occ.RecipientID, contributions,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update occasion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("occasion not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete reports true iff exactly one record was removed.
func (r *OccasionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM occasions WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete occasion", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanOccasion(row pgx.Row) (*occasion.Occasion, error) {
	var (
		occ           occasion.Occasion
		contributions []byte
	)
	err := row.Scan(
		&occ.ID, &occ.Date, &occ.GroupID, &occ.Name, &occ.Interval,
		&occ.OrganizerID, &occ.RecipientID, &contributions,
	)
	if err != nil {
		return nil, err
	}
	if len(contributions) > 0 {
		if err := json.Unmarshal(contributions, &occ.Contributions); err != nil {
			return nil, err
		}
	}
	return &occ, nil
}

func collectOccasions(rows pgx.Rows) ([]occasion.Occasion, error) {
	var result []occasion.Occasion
	for rows.Next() {
		occ, err := scanOccasion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan occasion row", err)
		}
		result = append(result, *occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occasion rows", err)
	}
	return result, nil
}
