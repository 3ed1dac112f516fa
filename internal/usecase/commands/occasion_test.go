//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records map[uuid.UUID]occasion.Occasion
	nextID  uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		records: make(map[uuid.UUID]occasion.Occasion),
		nextID:  uuid.New(),
	}
}

func (r *fakeRepo) Create(_ context.Context, occ occasion.Occasion) (uuid.UUID, error) {
	occ.ID = r.nextID
	r.records[occ.ID] = occ
	return occ.ID, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*occasion.Occasion, error) {
	occ, ok := r.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("occasion not found", nil, infra.KindNotFound)
	}
	return &occ, nil
}

func (r *fakeRepo) Update(_ context.Context, occ occasion.Occasion) error {
	r.records[occ.ID] = occ
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

type fakeScheduler struct {
	scheduled   []occasion.Occasion
	cancelled   []uuid.UUID
	ranNow      []occasion.Occasion
	scheduleErr error
}

func (s *fakeScheduler) Schedule(occ occasion.Occasion) error {
	if s.scheduleErr != nil {
		return s.scheduleErr
	}
	s.scheduled = append(s.scheduled, occ)
	return nil
}

func (s *fakeScheduler) Cancel(id uuid.UUID) {
	s.cancelled = append(s.cancelled, id)
}

func (s *fakeScheduler) RunNow(_ context.Context, occ occasion.Occasion) (*notify.Attempt, error) {
	s.ranNow = append(s.ranNow, occ)
	return &notify.Attempt{Status: notify.StatusDeliveredPrimary, Message: "done"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validOccasion() occasion.Occasion {
	return occasion.Occasion{
		Date:        "2030-05-01",
		GroupID:     "G1",
		Name:        "Birthday",
		OrganizerID: "U9",
		RecipientID: "U1",
		Contributions: []occasion.Contribution{
			{UserID: "U2", Amount: 30},
		},
	}
}

func TestCreateOccasion(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and schedules", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		id, err := cmds.Create(ctx, validOccasion())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		require.Len(t, sched.scheduled, 1)
		assert.Equal(t, id, sched.scheduled[0].ID, "scheduled snapshot must carry the assigned ID")
	})

	t.Run("invalid occasion is rejected before persisting", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		occ := validOccasion()
		occ.Date = "bogus"
		_, err := cmds.Create(ctx, occ)
		assert.ErrorIs(t, err, commands.ErrInvalidOccasion)
		assert.Empty(t, repo.records)
		assert.Empty(t, sched.scheduled)
	})

	t.Run("scheduling failure rolls the record back", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{scheduleErr: occasion.ErrInvalidDate}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		_, err := cmds.Create(ctx, validOccasion())
		assert.ErrorIs(t, err, commands.ErrInvalidOccasion)
		assert.Empty(t, repo.records)
	})
}

func TestUpdateOccasion(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels before rescheduling", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		id, err := cmds.Create(ctx, validOccasion())
		require.NoError(t, err)

		updated := validOccasion()
		updated.ID = id
		updated.Name = "Anniversary"
		require.NoError(t, cmds.Update(ctx, updated))

		assert.Equal(t, []uuid.UUID{id}, sched.cancelled)
		require.Len(t, sched.scheduled, 2)
		assert.Equal(t, "Anniversary", sched.scheduled[1].Name)
		assert.Equal(t, "Anniversary", repo.records[id].Name)
	})

	t.Run("unknown ID fails", func(t *testing.T) {
		cmds := commands.NewOccasionCommands(newFakeRepo(), &fakeScheduler{}, testLogger())

		occ := validOccasion()
		occ.ID = uuid.New()
		assert.ErrorIs(t, cmds.Update(ctx, occ), commands.ErrOccasionNotFound)
	})
}

func TestDeleteOccasion(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels the job and removes the record", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		id, err := cmds.Create(ctx, validOccasion())
		require.NoError(t, err)

		require.NoError(t, cmds.Delete(ctx, id))
		assert.Contains(t, sched.cancelled, id)
		assert.Empty(t, repo.records)
	})

	t.Run("unknown ID fails but still cancels", func(t *testing.T) {
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(newFakeRepo(), sched, testLogger())

		id := uuid.New()
		assert.ErrorIs(t, cmds.Delete(ctx, id), commands.ErrOccasionNotFound)
		assert.Contains(t, sched.cancelled, id)
	})
}

func TestRunOccasion(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the loaded occasion now", func(t *testing.T) {
		repo := newFakeRepo()
		sched := &fakeScheduler{}
		cmds := commands.NewOccasionCommands(repo, sched, testLogger())

		id, err := cmds.Create(ctx, validOccasion())
		require.NoError(t, err)

		attempt, err := cmds.Run(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, notify.StatusDeliveredPrimary, attempt.Status)
		require.Len(t, sched.ranNow, 1)
		assert.Equal(t, id, sched.ranNow[0].ID)
	})

	t.Run("unknown ID fails", func(t *testing.T) {
		cmds := commands.NewOccasionCommands(newFakeRepo(), &fakeScheduler{}, testLogger())
		_, err := cmds.Run(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrOccasionNotFound)
	})
}
