package occasion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("invalid occasion date")
	ErrMissingGroup     = errors.New("occasion group is required")
	ErrMissingRecipient = errors.New("occasion recipient is required")
	ErrMissingName      = errors.New("occasion name is required")
	ErrNegativeAmount   = errors.New("contribution amount cannot be negative")
)

// DateLayout is the calendar-date form occasions are stored with. No
// time-of-day is persisted; the trigger hour is applied at scheduling time.
const DateLayout = "2006-01-02"

type Contribution struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// Occasion is a scheduled gift event. Group, organizer and recipient are
// opaque references into the external group/user services; the ID is assigned
// by the store on creation and immutable afterwards. Occasions are passed by
// value into the scheduler so a fire callback never observes a concurrent
// mutation.
type Occasion struct {
	ID            uuid.UUID
	Date          string
	GroupID       string
	Name          string
	Interval      string
	OrganizerID   string
	RecipientID   string
	Contributions []Contribution
}

func (o Occasion) Validate() error {
	if _, err := time.Parse(DateLayout, o.Date); err != nil {
		return ErrInvalidDate
	}
	if o.GroupID == "" {
		return ErrMissingGroup
	}
	if o.RecipientID == "" {
		return ErrMissingRecipient
	}
	if o.Name == "" {
		return ErrMissingName
	}
	for _, c := range o.Contributions {
		if c.Amount < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

// TotalContributions sums the contributed amounts in list order. A nil or
// empty list sums to zero.
func TotalContributions(cs []Contribution) float64 {
	var total float64
	for _, c := range cs {
		total += c.Amount
	}
	return total
}

// FireTime resolves the occasion date to its trigger instant: the configured
// hour of that calendar day in the given location.
func FireTime(date string, hour int, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day.Add(time.Duration(hour) * time.Hour), nil
}
