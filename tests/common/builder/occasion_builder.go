//go:build unit || e2e

package builder

import (
	reqdto "gift-occasions/internal/handler/dto/request"
)

type OccasionBuilder struct {
	Date          string
	GroupID       string
	Interval      string
	Name          string
	OrganizerID   string
	RecipientID   string
	Contributions []reqdto.ContributionRequest
}

func NewOccasionBuilder() *OccasionBuilder {
	return &OccasionBuilder{
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
}

func (b *OccasionBuilder) WithDate(date string) *OccasionBuilder {
	b.Date = date
	return b
}

func (b *OccasionBuilder) WithName(name string) *OccasionBuilder {
	b.Name = name
	return b
}

func (b *OccasionBuilder) BuildCreateDTO() reqdto.CreateOccasionRequest {
	return reqdto.CreateOccasionRequest{
		Date:          b.Date,
		GroupID:       b.GroupID,
		Interval:      b.Interval,
		Name:          b.Name,
		OrganizerID:   b.OrganizerID,
		RecipientID:   b.RecipientID,
		Contributions: b.Contributions,
	}
}

func (b *OccasionBuilder) BuildUpdateDTO() reqdto.UpdateOccasionRequest {
	return reqdto.UpdateOccasionRequest{
		Date:          b.Date,
		GroupID:       b.GroupID,
		Interval:      b.Interval,
		Name:          b.Name,
		OrganizerID:   b.OrganizerID,
		RecipientID:   b.RecipientID,
		Contributions: b.Contributions,
	}
}
