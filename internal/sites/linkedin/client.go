// Package linkedin is the adapter for the LinkedIn UGC posts API.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

const DefaultBaseURL = "https://api.linkedin.com/v2"

// Client publishes shares as the authenticated member.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	creds      config.LinkedInCredentials
	log        zerolog.Logger
}

func NewClient(creds config.LinkedInCredentials, log zerolog.Logger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
		log:        log.With().Str("gateway", "linkedin").Logger(),
	}
}

var _ ports.LinkedInGateway = (*Client)(nil)

// Post publishes the publication as a UGC share and returns the share id.
func (c *Client) Post(ctx context.Context, pub *domain.LinkedInPublication) (domain.Receipt, error) {
	if err := pub.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	payload := ugcPostRequest{
		Author:         "urn:li:person:" + c.creds.UserID,
		LifecycleState: "PUBLISHED",
	}
	payload.SpecificContent.ShareContent.ShareCommentary.Text = pub.Text()
	payload.SpecificContent.ShareContent.ShareMediaCategory = "NONE"
	payload.Visibility.MemberNetworkVisibility = "PUBLIC"

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return domain.Receipt{}, c.wrap("building request", err)
	}
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.Receipt{}, c.wrap("sending request", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformLinkedIn,
			Reason:   fmt.Sprintf("ugc post failed (%d): %s", resp.StatusCode, raw),
		}
	}

	var res ugcPostResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.Receipt{}, c.wrap("decoding response", err)
	}
	if res.ID == "" {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformLinkedIn,
			Reason:   "response carries no share id",
		}
	}

	c.log.Debug().Str("share_id", res.ID).Msg("ugc post created")
	return domain.Receipt{ID: res.ID, Raw: map[string]any{"id": res.ID}}, nil
}

func (c *Client) wrap(reason string, err error) error {
	return &domain.PostError{Platform: domain.PlatformLinkedIn, Reason: reason, Cause: err}
}
