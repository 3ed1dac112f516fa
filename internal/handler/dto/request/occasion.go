package request

import (
	"gift-occasions/internal/domain/occasion"

	"github.com/google/uuid"
)

type ContributionRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Amount float64 `json:"amount"`
}

type CreateOccasionRequest struct {
	Date          string                `json:"date" binding:"required"`
	GroupID       string                `json:"groupId" binding:"required"`
	Interval      string                `json:"interval"`
	Name          string                `json:"name" binding:"required"`
	OrganizerID   string                `json:"organizerId"`
	RecipientID   string                `json:"recipientId" binding:"required"`
	Contributions []ContributionRequest `json:"contributions"`
}

type UpdateOccasionRequest struct {
	Date          string                `json:"date" binding:"required"`
	GroupID       string                `json:"groupId" binding:"required"`
	Interval      string                `json:"interval"`
	Name          string                `json:"name" binding:"required"`
	OrganizerID   string                `json:"organizerId"`
	RecipientID   string                `json:"recipientId" binding:"required"`
	Contributions []ContributionRequest `json:"contributions"`
}

func (r CreateOccasionRequest) ToDomain() occasion.Occasion {
	return toDomain(uuid.Nil, r.Date, r.GroupID, r.Interval, r.Name, r.OrganizerID, r.RecipientID, r.Contributions)
}

func (r UpdateOccasionRequest) ToDomain(id uuid.UUID) occasion.Occasion {
	return toDomain(id, r.Date, r.GroupID, r.Interval, r.Name, r.OrganizerID, r.RecipientID, r.Contributions)
}

func toDomain(id uuid.UUID, date, groupID, interval, name, organizerID, recipientID string, contributions []ContributionRequest) occasion.Occasion {
	cs := make([]occasion.Contribution, len(contributions))
	for i, c := range contributions {
		cs[i] = occasion.Contribution{
			UserID: c.UserID,
			Amount: c.Amount,
		}
	}

	return occasion.Occasion{
		ID:            id,
		Date:          date,
		GroupID:       groupID,
		Interval:      interval,
		Name:          name,
		OrganizerID:   organizerID,
		RecipientID:   recipientID,
		Contributions: cs,
	}
}
