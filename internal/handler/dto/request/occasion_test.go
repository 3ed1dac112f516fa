//go:build unit

package request_test

import (
	"testing"

	"gift-occasions/internal/domain/occasion"
	reqdto "gift-occasions/internal/handler/dto/request"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestCreateOccasionRequestToDomain(t *testing.T) {
	req := reqdto.CreateOccasionRequest{
		Date:        "2030-05-01",
		GroupID:     "0001",
		Interval:    "annual",
		Name:        "Birthday",
		OrganizerID: "0009",
		RecipientID: "0002",
		Contributions: []reqdto.ContributionRequest{
			{UserID: "0003", Amount: 20},
			{UserID: "0004", Amount: 50},
		},
	}

	expected := occasion.Occasion{
		Date:        "2030-05-01",
		GroupID:     "0001",
		Interval:    "annual",
		Name:        "Birthday",
		OrganizerID: "0009",
		RecipientID: "0002",
		Contributions: []occasion.Contribution{
			{UserID: "0003", Amount: 20},
			{UserID: "0004", Amount: 50},
		},
	}

	if diff := cmp.Diff(expected, req.ToDomain()); diff != "" {
		t.Errorf("ToDomain mismatch (-expected +actual):\n%s", diff)
	}
}

func TestUpdateOccasionRequestToDomain(t *testing.T) {
	id := uuid.New()
	req := reqdto.UpdateOccasionRequest{
		Date:        "2030-06-15",
		GroupID:     "0001",
		Name:        "Anniversary",
		RecipientID: "0002",
	}

	got := req.ToDomain(id)
	if got.ID != id {
		t.Errorf("expected path ID %s to be carried into the entity, got %s", id, got.ID)
	}

	expected := occasion.Occasion{
		ID:            id,
		Date:          "2030-06-15",
		GroupID:       "0001",
		Name:          "Anniversary",
		RecipientID:   "0002",
		Contributions: []occasion.Contribution{},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ToDomain mismatch (-expected +actual):\n%s", diff)
	}
}
