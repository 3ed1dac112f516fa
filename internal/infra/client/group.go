package client

import (
	"context"
	"encoding/json"
	"net/http"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/errs"
)

type GroupView struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type GroupClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGroupClient(cfg config.UpstreamConfig) *GroupClient {
	return &GroupClient{
		baseURL:    cfg.GroupServiceURL,
		httpClient: newHTTPClient(cfg),
	}
}

func (c *GroupClient) GetGroup(ctx context.Context, token, groupID string) (*GroupView, error) {
	body, err := doRequest(ctx, c.httpClient, http.MethodGet, c.baseURL+"/"+groupID, token, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch group "+groupID)
	}

	var view GroupView
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode group response"), ErrUpstream)
	}
	return &view, nil
}
