package facebook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

func testCreds() config.FacebookCredentials {
	return config.FacebookCredentials{
		AppID:       "app",
		AppSecret:   "secret",
		AccessToken: "user-token",
		PageID:      "page123",
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

func TestInitializeExchangesPageToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/page123", r.URL.Path)
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"access_token":"page-token","id":"page123"}`))
	})

	require.NoError(t, client.Initialize(context.Background()))
	assert.Equal(t, "page-token", client.accessToken)
}

func TestInitializeKeepsUserTokenOnRefusal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	})

	require.NoError(t, client.Initialize(context.Background()))
	assert.Equal(t, "user-token", client.accessToken)
}

func TestPost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/page123/feed", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Du contenu pour la page", r.PostForm.Get("message"))
		assert.Equal(t, "user-token", r.PostForm.Get("access_token"))

		w.Write([]byte(`{"id":"page123_456"}`))
	})

	pub, err := domain.NewFacebookPublication("Du contenu pour la page", "")
	require.NoError(t, err)

	receipt, err := client.Post(context.Background(), pub)
	require.NoError(t, err)
	assert.Equal(t, "page123_456", receipt.ID)
}

func TestPostGraphError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
	})

	pub, err := domain.NewFacebookPublication("Du contenu", "")
	require.NoError(t, err)

	_, err = client.Post(context.Background(), pub)
	var postErr *domain.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Equal(t, domain.PlatformFacebook, postErr.Platform)
	assert.Contains(t, postErr.Reason, "OAuthException")
	assert.Contains(t, postErr.Reason, "190")
}

func TestPostMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	pub, err := domain.NewFacebookPublication("Du contenu", "")
	require.NoError(t, err)

	_, err = client.Post(context.Background(), pub)
	var postErr *domain.PostError
	require.ErrorAs(t, err, &postErr)
	assert.Contains(t, postErr.Reason, "no post id")
}
