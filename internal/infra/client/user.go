package client

import (
	"context"
	"encoding/json"
	"net/http"

	"gift-occasions/internal/pkg/config"
	"gift-occasions/internal/pkg/errs"
)

type UserView struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	TwitterHandle string `json:"twitterHandle"`
	WishListLink  string `json:"wishListLink"`
}

type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewUserClient(cfg config.UpstreamConfig) *UserClient {
	return &UserClient{
		baseURL:    cfg.UserServiceURL,
		httpClient: newHTTPClient(cfg),
	}
}

func (c *UserClient) GetUser(ctx context.Context, token, userID string) (*UserView, error) {
	body, err := doRequest(ctx, c.httpClient, http.MethodGet, c.baseURL+"/"+userID, token, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch user "+userID)
	}

	var view UserView
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode user response"), ErrUpstream)
	}
	return &view, nil
}
