package orchestrator

import (
	"context"
	"log/slog"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/pkg/errs"
	"gift-occasions/internal/pkg/jwt"

	"github.com/google/uuid"
)

type TokenMinter interface {
	MintServiceToken(subject string, groups ...string) (string, error)
}

type GroupFetcher interface {
	GetGroup(ctx context.Context, token, groupID string) (*client.GroupView, error)
}

type UserFetcher interface {
	GetUser(ctx context.Context, token, userID string) (*client.UserView, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, token, recipientHandle, message string) notify.Status
}

type OccasionDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Workflow is the per-occasion procedure run when a job fires: resolve the
// group and recipient, total the contributions, render the message, deliver
// it through the gateway and clear the occasion record.
type Workflow struct {
	tokens  TokenMinter
	groups  GroupFetcher
	users   UserFetcher
	gateway Deliverer
	store   OccasionDeleter
	logger  *slog.Logger
}

func NewWorkflow(
	tokens TokenMinter,
	groups GroupFetcher,
	users UserFetcher,
	gateway Deliverer,
	store OccasionDeleter,
	logger *slog.Logger,
) *Workflow {
	return &Workflow{
		tokens:  tokens,
		groups:  groups,
		users:   users,
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Run executes the workflow for one firing. A failed group or user lookup
// aborts before delivery and leaves the record in place, so a manual re-run
// stays possible. Once delivery has been attempted the record is deleted no
// matter how delivery went: an attempted occasion must never fire again.
func (w *Workflow) Run(ctx context.Context, occ occasion.Occasion) (*notify.Attempt, error) {
	token, err := w.tokens.MintServiceToken("orchestrator", jwt.GroupOrchestrator)
	if err != nil {
		return nil, errs.Wrap(err, "failed to mint service token")
	}

	group, err := w.groups.GetGroup(ctx, token, occ.GroupID)
	if err != nil {
		return nil, errs.Wrap(err, "group lookup failed for occasion "+occ.ID.String())
	}

	recipient, err := w.users.GetUser(ctx, token, occ.RecipientID)
	if err != nil {
		return nil, errs.Wrap(err, "recipient lookup failed for occasion "+occ.ID.String())
	}

	total := occasion.TotalContributions(occ.Contributions)
	message := notify.EventMessage(
		recipient.FirstName,
		recipient.LastName,
		recipient.WishListLink,
		group.Name,
		occ.Name,
		notify.FormatUSD(total),
	)

	status := w.gateway.Deliver(ctx, token, recipient.TwitterHandle, message)

	if deleted, delErr := w.store.Delete(ctx, occ.ID); delErr != nil {
		w.logger.Error("failed to delete occasion after notification attempt",
			"occasion_id", occ.ID.String(), "error", delErr.Error())
	} else if !deleted {
		w.logger.Warn("occasion record already gone after notification attempt",
			"occasion_id", occ.ID.String())
	}

	w.logger.Info("occasion notification attempted",
		"occasion_id", occ.ID.String(),
		"recipient", recipient.FirstName+" "+recipient.LastName,
		"status", string(status))

	return &notify.Attempt{
		RecipientName:   recipient.FirstName + " " + recipient.LastName,
		RecipientHandle: recipient.TwitterHandle,
		Total:           total,
		Message:         message,
		Status:          status,
	}, nil
}
