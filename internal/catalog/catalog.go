// Package catalog holds the static knowledge the prompt pipeline draws from:
// the topic database, the per-platform guideline table, and the brand voice
// catalogs. Everything is loaded once at startup and read-only afterwards;
// the only non-determinism is the injected random source.
package catalog

import (
	_ "embed"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

//go:embed topics.yaml
var defaultTopics []byte

// Catalog is the immutable topic/guideline/voice knowledge base.
type Catalog struct {
	topics   map[domain.TopicCategory][]domain.Topic
	profiles map[domain.Platform]domain.PlatformProfile
	rng      *rand.Rand
}

// Option customizes catalog construction.
type Option func(*options)

type options struct {
	topicsPath string
	rng        *rand.Rand
}

// WithTopicsFile loads the topic database from path instead of the embedded
// default.
func WithTopicsFile(path string) Option {
	return func(o *options) { o.topicsPath = path }
}

// WithRand injects a deterministic random source, for tests.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// New builds the catalog. It fails with a ConfigurationError when the topic
// file cannot be read or contains incomplete records.
func New(opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	raw := defaultTopics
	if o.topicsPath != "" {
		b, err := os.ReadFile(o.topicsPath)
		if err != nil {
			return nil, &domain.ConfigurationError{Reason: "reading topics file", Cause: err}
		}
		raw = b
	}

	var parsed map[domain.TopicCategory][]domain.Topic
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, &domain.ConfigurationError{Reason: "parsing topics file", Cause: err}
	}
	if len(parsed) == 0 {
		return nil, domain.NewConfigurationError("topics file defines no categories")
	}
	known := make(map[domain.TopicCategory]bool, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		known[cat] = true
	}
	for cat, topics := range parsed {
		if !known[cat] {
			return nil, domain.NewConfigurationError("unknown topic category %q", cat)
		}
		if len(topics) == 0 {
			return nil, domain.NewConfigurationError("category %q has no topics", cat)
		}
		for i, t := range topics {
			if t.Subject == "" || t.Context == "" || t.Problem == "" || t.Solution == "" || t.Link == "" {
				return nil, domain.NewConfigurationError("topic %d of category %q is missing a field", i, cat)
			}
		}
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Catalog{
		topics:   parsed,
		profiles: platformProfiles(),
		rng:      rng,
	}, nil
}

// SelectRandomTopic draws one topic uniformly from the category's list.
func (c *Catalog) SelectRandomTopic(category domain.TopicCategory) (domain.Topic, error) {
	topics, ok := c.topics[category]
	if !ok {
		return domain.Topic{}, domain.NewValidationError("invalid topic category: %s", category)
	}
	return topics[c.rng.Intn(len(topics))], nil
}

// SelectRandomCategory draws one of the categories present in the database.
func (c *Catalog) SelectRandomCategory() domain.TopicCategory {
	cats := domain.Categories()
	present := cats[:0]
	for _, cat := range cats {
		if _, ok := c.topics[cat]; ok {
			present = append(present, cat)
		}
	}
	return present[c.rng.Intn(len(present))]
}

// Profile returns the guideline profile for a platform.
func (c *Catalog) Profile(platform domain.Platform) (domain.PlatformProfile, error) {
	p, ok := c.profiles[platform]
	if !ok {
		return domain.PlatformProfile{}, domain.NewValidationError("unsupported platform: %s", platform)
	}
	return p, nil
}

// HasPlatform reports whether platform appears in the guideline table.
func (c *Catalog) HasPlatform(platform domain.Platform) bool {
	_, ok := c.profiles[platform]
	return ok
}

// SelectVoice draws a style, a tone, and a personality, each independently
// and uniformly. The catalogs are non-empty by construction, so this cannot
// fail.
func (c *Catalog) SelectVoice() domain.VoiceProfile {
	return domain.VoiceProfile{
		Style:       brandStyles[c.rng.Intn(len(brandStyles))],
		Tone:        brandTones[c.rng.Intn(len(brandTones))],
		Personality: brandPersonalities[c.rng.Intn(len(brandPersonalities))],
	}
}
