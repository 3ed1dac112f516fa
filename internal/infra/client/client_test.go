//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gift-occasions/internal/infra/client"
	"gift-occasions/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstreamConfig(url string) config.UpstreamConfig {
	return config.UpstreamConfig{
		GroupServiceURL:           url + "/groups",
		UserServiceURL:            url + "/users",
		NotificationServiceURL:    url + "/notifications",
		NotificationV11ServiceURL: url + "/notifications_v1_1",
		RequestTimeout:            2 * time.Second,
	}
}

func TestGroupClient(t *testing.T) {
	t.Run("decodes group and sends bearer token", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "/groups/G1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "Friends", "members": []string{"U1", "U2"}})
		}))
		defer srv.Close()

		c := client.NewGroupClient(upstreamConfig(srv.URL))
		view, err := c.GetGroup(context.Background(), "tok", "G1")
		require.NoError(t, err)
		assert.Equal(t, "Friends", view.Name)
		assert.Equal(t, []string{"U1", "U2"}, view.Members)
		assert.Equal(t, "Bearer tok", gotAuth)
	})

	t.Run("non-2xx maps to upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := client.NewGroupClient(upstreamConfig(srv.URL))
		_, err := c.GetGroup(context.Background(), "tok", "G1")
		assert.ErrorIs(t, err, client.ErrUpstream)
	})

	t.Run("unreachable host maps to upstream error", func(t *testing.T) {
		cfg := upstreamConfig("http://127.0.0.1:1")
		cfg.RequestTimeout = 200 * time.Millisecond

		c := client.NewGroupClient(cfg)
		_, err := c.GetGroup(context.Background(), "tok", "G1")
		assert.ErrorIs(t, err, client.ErrUpstream)
	})
}

func TestUserClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/U1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"firstName":     "Jane",
			"lastName":      "Doe",
			"twitterHandle": "janedoe",
			"wishListLink":  "site.com",
		})
	}))
	defer srv.Close()

	c := client.NewUserClient(upstreamConfig(srv.URL))
	view, err := c.GetUser(context.Background(), "tok", "U1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", view.FirstName)
	assert.Equal(t, "Doe", view.LastName)
	assert.Equal(t, "janedoe", view.TwitterHandle)
	assert.Equal(t, "site.com", view.WishListLink)
}

func TestNotificationClient(t *testing.T) {
	t.Run("simple sink payload shape", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/notifications", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		defer srv.Close()

		c := client.NewNotificationClient(upstreamConfig(srv.URL))
		require.NoError(t, c.Send(context.Background(), "tok", "hello"))
		assert.Equal(t, map[string]any{"notification": "hello"}, got)
	})

	t.Run("extended sink payload shape", func(t *testing.T) {
		var got map[string]map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/notifications_v1_1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		defer srv.Close()

		c := client.NewNotificationClient(upstreamConfig(srv.URL))
		require.NoError(t, c.SendExtended(context.Background(), "tok", "janedoe", client.ModeMention, "hello"))
		assert.Equal(t, map[string]any{
			"twiterHandle":     "janedoe",
			"message":          "hello",
			"notificationMode": "mention",
		}, got["notification"])
	})

	t.Run("sink failure surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := client.NewNotificationClient(upstreamConfig(srv.URL))
		assert.ErrorIs(t, c.Send(context.Background(), "tok", "hello"), client.ErrUpstream)
	})
}
