package response

import (
	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/notify"

	"github.com/google/uuid"
)

type ContributionResponse struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

type OccasionResponse struct {
	ID            uuid.UUID              `json:"id"`
	Date          string                 `json:"date"`
	GroupID       string                 `json:"groupId"`
	Interval      string                 `json:"interval"`
	Name          string                 `json:"name"`
	OrganizerID   string                 `json:"organizerId"`
	RecipientID   string                 `json:"recipientId"`
	Contributions []ContributionResponse `json:"contributions"`
}

type CreateOccasionResponse struct {
	ID uuid.UUID `json:"id"`
}

// RunOccasionResponse reports the outcome of an on-demand firing. A
// delivered or fallen-back notification both count as success; Status
// carries the fine-grained result.
type RunOccasionResponse struct {
	RunSuccess    bool    `json:"runSuccess"`
	Status        string  `json:"status"`
	RecipientName string  `json:"recipientName"`
	Total         float64 `json:"total"`
	Message       string  `json:"message"`
}

func FromOccasion(occ *occasion.Occasion) *OccasionResponse {
	cs := make([]ContributionResponse, len(occ.Contributions))
	for i, c := range occ.Contributions {
		cs[i] = ContributionResponse{
			UserID: c.UserID,
			Amount: c.Amount,
		}
	}

	return &OccasionResponse{
		ID:            occ.ID,
		Date:          occ.Date,
		GroupID:       occ.GroupID,
		Interval:      occ.Interval,
		Name:          occ.Name,
		OrganizerID:   occ.OrganizerID,
		RecipientID:   occ.RecipientID,
		Contributions: cs,
	}
}

func FromAttempt(attempt *notify.Attempt) *RunOccasionResponse {
	return &RunOccasionResponse{
		RunSuccess:    true,
		Status:        string(attempt.Status),
		RecipientName: attempt.RecipientName,
		Total:         attempt.Total,
		Message:       attempt.Message,
	}
}
