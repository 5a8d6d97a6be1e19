package publisher

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

// Post use cases wrap generated text into the matching publication entity
// (which validates it) and hand it to the platform gateway. Entity
// validation failures surface as ValidationError; everything the gateway
// returns is translated into this platform's PostError kind.

// TweetPoster publishes tweets.
type TweetPoster struct {
	gateway ports.TwitterGateway
	log     zerolog.Logger
}

func NewTweetPoster(gw ports.TwitterGateway, log zerolog.Logger) *TweetPoster {
	return &TweetPoster{gateway: gw, log: log.With().Str("component", "tweet_poster").Logger()}
}

func (p *TweetPoster) Execute(ctx context.Context, text string) (domain.Receipt, error) {
	tweet, err := domain.NewTweet(text)
	if err != nil {
		return domain.Receipt{}, err
	}
	receipt, err := p.gateway.PostTweet(ctx, tweet)
	if err != nil {
		return domain.Receipt{}, wrapPostError(domain.PlatformTwitter, err)
	}
	p.log.Info().Str("post_id", receipt.ID).Msg("tweet published")
	return receipt, nil
}

// FacebookPoster publishes page posts.
type FacebookPoster struct {
	gateway ports.FacebookGateway
	log     zerolog.Logger
}

func NewFacebookPoster(gw ports.FacebookGateway, log zerolog.Logger) *FacebookPoster {
	return &FacebookPoster{gateway: gw, log: log.With().Str("component", "facebook_poster").Logger()}
}

// Execute posts text with the given privacy setting; an empty privacy
// defaults to PUBLIC.
func (p *FacebookPoster) Execute(ctx context.Context, text, privacy string) (domain.Receipt, error) {
	pub, err := domain.NewFacebookPublication(text, privacy)
	if err != nil {
		return domain.Receipt{}, err
	}
	receipt, err := p.gateway.Post(ctx, pub)
	if err != nil {
		return domain.Receipt{}, wrapPostError(domain.PlatformFacebook, err)
	}
	p.log.Info().Str("post_id", receipt.ID).Msg("facebook publication published")
	return receipt, nil
}

// LinkedInPoster publishes UGC shares.
type LinkedInPoster struct {
	gateway ports.LinkedInGateway
	log     zerolog.Logger
}

func NewLinkedInPoster(gw ports.LinkedInGateway, log zerolog.Logger) *LinkedInPoster {
	return &LinkedInPoster{gateway: gw, log: log.With().Str("component", "linkedin_poster").Logger()}
}

func (p *LinkedInPoster) Execute(ctx context.Context, text string) (domain.Receipt, error) {
	pub, err := domain.NewLinkedInPublication(text)
	if err != nil {
		return domain.Receipt{}, err
	}
	receipt, err := p.gateway.Post(ctx, pub)
	if err != nil {
		return domain.Receipt{}, wrapPostError(domain.PlatformLinkedIn, err)
	}
	p.log.Info().Str("post_id", receipt.ID).Msg("linkedin publication published")
	return receipt, nil
}

func wrapPostError(platform domain.Platform, err error) error {
	var postErr *domain.PostError
	if errors.As(err, &postErr) {
		return err
	}
	return &domain.PostError{Platform: platform, Reason: "gateway call failed", Cause: err}
}
