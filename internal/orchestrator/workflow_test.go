//go:build unit

package orchestrator_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/orchestrator"
	"gift-occasions/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinter struct{ err error }

func (f *fakeMinter) MintServiceToken(string, ...string) (string, error) {
	return "service-token", f.err
}

type fakeGroups struct {
	view *client.GroupView
	err  error
}

func (f *fakeGroups) GetGroup(context.Context, string, string) (*client.GroupView, error) {
	return f.view, f.err
}

type fakeUsers struct {
	view *client.UserView
	err  error
}

func (f *fakeUsers) GetUser(context.Context, string, string) (*client.UserView, error) {
	return f.view, f.err
}

type fakeGateway struct {
	status   notify.Status
	calls    int
	messages []string
	handles  []string
}

func (f *fakeGateway) Deliver(_ context.Context, _ string, handle, message string) notify.Status {
	f.calls++
	f.messages = append(f.messages, message)
	f.handles = append(f.handles, handle)
	return f.status
}

type fakeDeleter struct {
	deleted []uuid.UUID
	found   bool
	err     error
}

func (f *fakeDeleter) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.deleted = append(f.deleted, id)
	return f.found, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func janeOccasion() occasion.Occasion {
	return occasion.Occasion{
		ID:          uuid.New(),
		Date:        "2030-05-02",
		GroupID:     "G1",
		Name:        "Birthday",
		RecipientID: "U1",
		Contributions: []occasion.Contribution{
			{UserID: "U2", Amount: 30},
		},
	}
}

func TestWorkflowRun(t *testing.T) {
	ctx := context.Background()

	friends := &fakeGroups{view: &client.GroupView{Name: "Friends"}}
	jane := &fakeUsers{view: &client.UserView{
		FirstName:     "Jane",
		LastName:      "Doe",
		TwitterHandle: "janedoe",
		WishListLink:  "site.com",
	}}

	t.Run("renders the message, delivers once and deletes the record", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusDeliveredPrimary}
		store := &fakeDeleter{found: true}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, friends, jane, gw, store, testLogger())

		occ := janeOccasion()
		attempt, err := wf.Run(ctx, occ)
		require.NoError(t, err)

		expectedMsg := "Congratulations Jane Doe! $30.00 has been contributed by Friends for Birthday. " +
			"Please select a gift from your wish list at site.com."
		assert.Equal(t, expectedMsg, attempt.Message)
		assert.Equal(t, "Jane Doe", attempt.RecipientName)
		assert.Equal(t, 30.0, attempt.Total)
		assert.Equal(t, notify.StatusDeliveredPrimary, attempt.Status)

		assert.Equal(t, 1, gw.calls, "gateway must be invoked exactly once")
		assert.Equal(t, []string{expectedMsg}, gw.messages)
		assert.Equal(t, []string{"janedoe"}, gw.handles)
		assert.Equal(t, []uuid.UUID{occ.ID}, store.deleted)
	})

	t.Run("record is deleted even when delivery only fell back", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusDeliveredFallback}
		store := &fakeDeleter{found: true}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, friends, jane, gw, store, testLogger())

		occ := janeOccasion()
		attempt, err := wf.Run(ctx, occ)
		require.NoError(t, err)
		assert.Equal(t, notify.StatusDeliveredFallback, attempt.Status)
		assert.Len(t, store.deleted, 1)
	})

	t.Run("record is deleted even when delivery failed outright", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusFailed}
		store := &fakeDeleter{found: true}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, friends, jane, gw, store, testLogger())

		attempt, err := wf.Run(ctx, janeOccasion())
		require.NoError(t, err)
		assert.Equal(t, notify.StatusFailed, attempt.Status)
		assert.Len(t, store.deleted, 1)
	})

	t.Run("group lookup failure aborts without deleting", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusDeliveredPrimary}
		store := &fakeDeleter{found: true}
		groups := &fakeGroups{err: errs.Mark(errs.New("boom"), client.ErrUpstream)}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, groups, jane, gw, store, testLogger())

		_, err := wf.Run(ctx, janeOccasion())
		assert.ErrorIs(t, err, client.ErrUpstream)
		assert.Zero(t, gw.calls)
		assert.Empty(t, store.deleted, "occasion must survive a failed group lookup")
	})

	t.Run("recipient lookup failure aborts without deleting", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusDeliveredPrimary}
		store := &fakeDeleter{found: true}
		users := &fakeUsers{err: errs.Mark(errs.New("boom"), client.ErrUpstream)}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, friends, users, gw, store, testLogger())

		_, err := wf.Run(ctx, janeOccasion())
		assert.ErrorIs(t, err, client.ErrUpstream)
		assert.Zero(t, gw.calls)
		assert.Empty(t, store.deleted)
	})

	t.Run("delete failure after delivery is swallowed", func(t *testing.T) {
		gw := &fakeGateway{status: notify.StatusDeliveredPrimary}
		store := &fakeDeleter{err: errs.New("db down")}
		wf := orchestrator.NewWorkflow(&fakeMinter{}, friends, jane, gw, store, testLogger())

		attempt, err := wf.Run(ctx, janeOccasion())
		require.NoError(t, err)
		assert.Equal(t, notify.StatusDeliveredPrimary, attempt.Status)
	})
}
