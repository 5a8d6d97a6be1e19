// Package facebook is the adapter for the Facebook Graph API. It exchanges
// the user access token for a page token at initialization and publishes to
// the configured page feed.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

const DefaultBaseURL = "https://graph.facebook.com/v19.0"

// Client posts to a Facebook page feed.
type Client struct {
	BaseURL     string
	PageID      string
	HTTPClient  *http.Client
	accessToken string
	log         zerolog.Logger
}

func NewClient(creds config.FacebookCredentials, log zerolog.Logger) *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		PageID:      creds.PageID,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		accessToken: creds.AccessToken,
		log:         log.With().Str("gateway", "facebook").Logger(),
	}
}

var _ ports.FacebookGateway = (*Client)(nil)

// Initialize swaps the user token for a page access token. The user token
// stays in use when the exchange fails; posting may still succeed with it.
func (c *Client) Initialize(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/%s?fields=access_token&access_token=%s",
		c.BaseURL, c.PageID, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return c.wrap("building token exchange request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("page token exchange failed, keeping user token")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("page token exchange refused, keeping user token")
		return nil
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.AccessToken == "" {
		c.log.Warn().Msg("no page access token in response, keeping user token")
		return nil
	}

	c.accessToken = data.AccessToken
	c.log.Debug().Msg("page access token acquired")
	return nil
}

// Post publishes the publication on the page feed and returns the post id.
func (c *Client) Post(ctx context.Context, pub *domain.FacebookPublication) (domain.Receipt, error) {
	if err := pub.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	form := url.Values{}
	form.Set("message", pub.Text())
	form.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/%s/feed", c.BaseURL, c.PageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Receipt{}, c.wrap("building request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.Receipt{}, c.wrap("sending request", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var res feedResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.Receipt{}, c.wrap("decoding response", err)
	}
	if res.Error != nil {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformFacebook,
			Reason: fmt.Sprintf("graph api error code=%d type=%s: %s",
				res.Error.Code, res.Error.Type, res.Error.Message),
		}
	}
	if res.ID == "" {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformFacebook,
			Reason:   fmt.Sprintf("response carries no post id (%d): %s", resp.StatusCode, raw),
		}
	}

	c.log.Debug().Str("post_id", res.ID).Msg("feed post created")
	return domain.Receipt{ID: res.ID, Raw: map[string]any{"id": res.ID}}, nil
}

func (c *Client) wrap(reason string, err error) error {
	return &domain.PostError{Platform: domain.PlatformFacebook, Reason: reason, Cause: err}
}
