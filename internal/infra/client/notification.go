package client

import (
	"context"
	"encoding/json"
	"net/http"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/errs"
)

// Mode values accepted by the extended sink.
const (
	ModeMention       = "mention"
	ModeDirectMessage = "directMessage"
)

type simplePayload struct {
	Notification string `json:"notification"`
}

type extendedPayload struct {
	Notification extendedContent `json:"notification"`
}

// The "twiterHandle" spelling is part of the sink's wire contract.
type extendedContent struct {
	TwitterHandle    string `json:"twiterHandle"`
	Message          string `json:"message"`
	NotificationMode string `json:"notificationMode"`
}

// NotificationClient speaks to the two notification sinks: the simple one,
// which takes a bare message, and the extended (v1.1) one, which routes a
// message to a social handle.
type NotificationClient struct {
	simpleURL   string
	extendedURL string
	httpClient  *http.Client
}

func NewNotificationClient(cfg config.UpstreamConfig) *NotificationClient {
	return &NotificationClient{
		simpleURL:   cfg.NotificationServiceURL,
		extendedURL: cfg.NotificationV11ServiceURL,
		httpClient:  newHTTPClient(cfg),
	}
}

func (c *NotificationClient) Send(ctx context.Context, token, message string) error {
	payload, err := json.Marshal(simplePayload{Notification: message})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	_, err = doRequest(ctx, c.httpClient, http.MethodPost, c.simpleURL, token, payload)
	if err != nil {
		return errs.Wrap(err, "failed to send notification")
	}
	return nil
}

func (c *NotificationClient) SendExtended(ctx context.Context, token, handle, mode, message string) error {
	payload, err := json.Marshal(extendedPayload{
		Notification: extendedContent{
			TwitterHandle:    handle,
			Message:          message,
			NotificationMode: mode,
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode extended notification payload")
	}

	_, err = doRequest(ctx, c.httpClient, http.MethodPost, c.extendedURL, token, payload)
	if err != nil {
		return errs.Wrap(err, "failed to send extended notification")
	}
	return nil
}
