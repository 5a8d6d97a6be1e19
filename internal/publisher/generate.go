// Package publisher holds the use cases: per-platform content generation
// with a bounded length-retry loop, and posting through the platform
// gateways.
package publisher

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/catalog"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/prompting"
)

// DefaultMaxAttempts bounds the regeneration loop triggered by over-length
// content. Each attempt draws a fresh topic and voice.
const DefaultMaxAttempts = 3

const tweetGuidelines = `Here are the guidelines for this X (formerly Twitter) post:

1. Catchy start: begin with a short, impactful sentence that quickly grabs attention.
2. Value and relevance: share an insight, fact, or tip to engage the audience immediately.
3. Conciseness: keep the message concise and easy to digest.
4. Call to action: end with a prompt to reply, retweet, or follow.
5. Hashtags and tags: add up to 3 relevant hashtags for discoverability.
6. Professional yet authentic tone: professional but personal, possibly with a personal insight.

The post should be written in French, with appropriate emojis to enhance readability.
No special formatting is required for links, such as https://www.webpage.net.`

const facebookGuidelines = `Here are the guidelines for this Facebook post:

1. Engaging opener: start with an interesting or emotional sentence to immediately capture attention.
2. Clarity and conciseness: use clear sentences and short paragraphs for easy readability.
3. Value for the reader: share helpful information, tips, or insights relevant to the audience.
4. Call to action: end with a prompt encouraging readers to like, comment, share, or tag friends.
5. Relevant hashtags: add a few relevant hashtags, but keep it natural.
6. Friendly and authentic tone: professional yet friendly, with a personal touch if relevant.

The post should be written in French, with appropriate emojis to enhance readability.
No special formatting is required for links, such as https://www.webpage.net.`

const linkedinGuidelines = `Here are the guidelines for this LinkedIn post:

1. Strong hook at the beginning: start with an impactful sentence to grab attention.
2. Clarity and conciseness: structure the post for easy reading, with clear and concise sentences.
3. Added value: provide useful information and practical tips for the reader.
4. Call to action: end with a question or an invitation to comment, share, or provide feedback.
5. Relevant hashtags: add 3 to 5 hashtags related to the topic to increase reach.
6. Authenticity and professionalism: professional yet accessible tone, adding a personal touch if relevant.

The post should be in French and formatted naturally, with no special formatting
for links (e.g., https://www.webpage.net).`

// Generator produces validated post text for one platform. Each Execute
// walks select topic -> build prompt -> invoke generation -> check length,
// re-entering the build with a fresh draw when the text exceeds the
// platform ceiling.
type Generator struct {
	platform    domain.Platform
	guidelines  string
	brain       ports.Brain
	catalog     *catalog.Catalog
	builder     *prompting.Builder
	maxAttempts int
	log         zerolog.Logger
}

func newGenerator(platform domain.Platform, guidelines string, brain ports.Brain, cat *catalog.Catalog, log zerolog.Logger) *Generator {
	return &Generator{
		platform:    platform,
		guidelines:  guidelines,
		brain:       brain,
		catalog:     cat,
		builder:     prompting.NewBuilder(cat, log),
		maxAttempts: DefaultMaxAttempts,
		log:         log.With().Str("component", "generator").Str("platform", string(platform)).Logger(),
	}
}

// NewTweetGenerator builds the generation use case for Twitter/X.
func NewTweetGenerator(brain ports.Brain, cat *catalog.Catalog, log zerolog.Logger) *Generator {
	return newGenerator(domain.PlatformTwitter, tweetGuidelines, brain, cat, log)
}

// NewFacebookGenerator builds the generation use case for Facebook.
func NewFacebookGenerator(brain ports.Brain, cat *catalog.Catalog, log zerolog.Logger) *Generator {
	return newGenerator(domain.PlatformFacebook, facebookGuidelines, brain, cat, log)
}

// NewLinkedInGenerator builds the generation use case for LinkedIn.
func NewLinkedInGenerator(brain ports.Brain, cat *catalog.Catalog, log zerolog.Logger) *Generator {
	return newGenerator(domain.PlatformLinkedIn, linkedinGuidelines, brain, cat, log)
}

// SetMaxAttempts overrides the regeneration bound. Values below 1 are
// ignored.
func (g *Generator) SetMaxAttempts(n int) {
	if n >= 1 {
		g.maxAttempts = n
	}
}

// Platform returns the destination this generator writes for.
func (g *Generator) Platform() domain.Platform { return g.platform }

// Execute runs the generation state machine and returns text guaranteed to
// fit the platform ceiling, or a typed generation error. The category
// override may be empty, in which case each attempt draws a random one.
func (g *Generator) Execute(ctx context.Context, category domain.TopicCategory) (string, error) {
	profile, err := g.catalog.Profile(g.platform)
	if err != nil {
		return "", g.wrap(err)
	}

	lastLen := 0
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		cat := category
		if cat == "" {
			cat = g.catalog.SelectRandomCategory()
		}

		builder := g.builder.Reset()
		if _, err := builder.SetPlatformAndTopicCategory(string(g.platform), string(cat)); err != nil {
			return "", g.wrap(err)
		}
		prompt, err := builder.AddCustomInstructions(g.guidelines).Build()
		if err != nil {
			return "", g.wrap(err)
		}

		text, err := g.brain.Generate(ctx, prompt)
		if err != nil {
			return "", g.wrap(err)
		}

		if n := len([]rune(text)); n > profile.MaxLength {
			lastLen = n
			g.log.Warn().Int("attempt", attempt).Int("length", n).Int("limit", profile.MaxLength).
				Msg("generated content over platform limit, regenerating")
			continue
		}

		g.log.Info().Int("attempt", attempt).Str("category", string(cat)).Msg("content generated")
		return text, nil
	}

	return "", &domain.ContentTooLongError{
		Platform: g.platform,
		Length:   lastLen,
		Limit:    profile.MaxLength,
		Attempts: g.maxAttempts,
	}
}

// wrap translates any lower-layer error into this platform's generation
// error kind, preserving an already-tagged GenerationError's cause chain.
func (g *Generator) wrap(err error) error {
	var genErr *domain.GenerationError
	if errors.As(err, &genErr) {
		return &domain.GenerationError{Platform: g.platform, Reason: genErr.Reason, Cause: genErr.Cause}
	}
	return &domain.GenerationError{Platform: g.platform, Reason: "generation failed", Cause: err}
}
