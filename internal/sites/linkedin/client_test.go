package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

func testCreds() config.LinkedInCredentials {
	return config.LinkedInCredentials{
		ClientID:     "id",
		ClientSecret: "secret",
		AccessToken:  "token",
		UserID:       "AbC123",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(testCreds(), zerolog.Nop())
	client.BaseURL = srv.URL
	return client
}

func TestPost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ugcPosts", r.URL.Path)
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var body ugcPostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "urn:li:person:AbC123", body.Author)
		assert.Equal(t, "PUBLISHED", body.LifecycleState)
		assert.Equal(t, "Publication professionnelle", body.SpecificContent.ShareContent.ShareCommentary.Text)
		assert.Equal(t, "NONE", body.SpecificContent.ShareContent.ShareMediaCategory)
		assert.Equal(t, "PUBLIC", body.Visibility.MemberNetworkVisibility)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"urn:li:share:6789"}`))
	})

	pub, err := domain.NewLinkedInPublication("Publication professionnelle")
	require.NoError(t, err)

	receipt, err := client.Post(context.Background(), pub)
	require.NoError(t, err)
	assert.Equal(t, "urn:li:share:6789", receipt.ID)
}

func TestPostNon201Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid access token","status":401}`))
	})

	pub, err := domain.NewLinkedInPublication("Publication")
	require.NoError(t, err)

	_, err = client.Post(context.Background(), pub)
	var postErr *domain.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, domain.PlatformLinkedIn, postErr.Platform)
	assert.Contains(t, postErr.Reason, "401")
}

func TestPostMissingShareID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	pub, err := domain.NewLinkedInPublication("Publication")
	require.NoError(t, err)

	_, err = client.Post(context.Background(), pub)
	var postErr *domain.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Contains(t, postErr.Reason, "no share id")
}
