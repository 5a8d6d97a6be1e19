// Package twitter is the adapter for the X API v2. It signs requests with
// the OAuth1 user context and implements ports.TwitterGateway.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

const DefaultBaseURL = "https://api.twitter.com/2"

// Client posts tweets through the X API v2 create-tweet endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	log        zerolog.Logger
}

func NewClient(creds config.TwitterCredentials, log zerolog.Logger) *Client {
	oauthConfig := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)

	httpClient := oauthConfig.Client(oauth1.NoContext, token)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: httpClient,
		log:        log.With().Str("gateway", "twitter").Logger(),
	}
}

var _ ports.TwitterGateway = (*Client)(nil)

// PostTweet publishes the tweet and returns the created tweet's id.
func (c *Client) PostTweet(ctx context.Context, tweet *domain.Tweet) (domain.Receipt, error) {
	if err := tweet.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	body, _ := json.Marshal(createTweetRequest{Text: tweet.Text()})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return domain.Receipt{}, c.wrap("building request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.Receipt{}, c.wrap("sending request", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformTwitter,
			Reason:   fmt.Sprintf("tweet creation failed (%d): %s", resp.StatusCode, raw),
		}
	}

	var res createTweetResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.Receipt{}, c.wrap("decoding response", err)
	}
	if res.Data.ID == "" {
		return domain.Receipt{}, &domain.PostError{
			Platform: domain.PlatformTwitter,
			Reason:   "response carries no tweet id",
		}
	}

	c.log.Debug().Str("tweet_id", res.Data.ID).Msg("tweet created")
	return domain.Receipt{
		ID:  res.Data.ID,
		Raw: map[string]any{"id": res.Data.ID, "text": res.Data.Text},
	}, nil
}

func (c *Client) wrap(reason string, err error) error {
	return &domain.PostError{Platform: domain.PlatformTwitter, Reason: reason, Cause: err}
}
