package notify

import (
	"context"
	"log/slog"

	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/pkg/retry"
)

type Status string

const (
	StatusDeliveredPrimary  Status = "delivered-primary"
	StatusDeliveredFallback Status = "delivered-fallback"
	StatusFailed            Status = "failed"
)

// Attempt is the outcome of one delivery run for an occasion. It is never
// persisted; it only reaches logs and the response of an on-demand run.
type Attempt struct {
	RecipientName   string
	RecipientHandle string
	Total           float64
	Message         string
	Status          Status
}

// Sink abstracts the two notification channels the gateway writes to.
type Sink interface {
	Send(ctx context.Context, token, message string) error
	SendExtended(ctx context.Context, token, handle, mode, message string) error
}

// Gateway delivers a message with retry-then-fallback semantics: the primary
// path (the simple sink, fed the message chunk by chunk) gets the whole retry
// budget; once it is exhausted the extended sink is tried exactly once and
// never retried. A fallback failure is logged and swallowed.
type Gateway struct {
	sink        Sink
	maxAttempts int
	logger      *slog.Logger
}

func NewGateway(sink Sink, maxAttempts int, logger *slog.Logger) *Gateway {
	return &Gateway{
		sink:        sink,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (g *Gateway) Deliver(ctx context.Context, token, recipientHandle, message string) Status {
	chunks := SplitMessage(message)

	status, _ := retry.Do(retry.Policy{MaxAttempts: g.maxAttempts},
		func() (Status, error) {
			for _, chunk := range chunks {
				if err := g.sink.Send(ctx, token, chunk); err != nil {
					return StatusFailed, err
				}
			}
			return StatusDeliveredPrimary, nil
		},
		func(lastErr error) (Status, error) {
			g.logger.Warn("primary notification delivery exhausted, falling back",
				"error", lastErr.Error())

			if err := g.sink.SendExtended(ctx, token, recipientHandle, client.ModeMention, message); err != nil {
				g.logger.Error("fallback notification delivery failed", "error", err.Error())
				return StatusFailed, nil
			}
			return StatusDeliveredFallback, nil
		})

	return status
}
