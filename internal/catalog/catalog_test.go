package catalog

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New(WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return cat
}

func TestEmbeddedTopicsAreComplete(t *testing.T) {
	cat := newTestCatalog(t)
	for _, category := range domain.Categories() {
		topics := cat.topics[category]
		require.NotEmpty(t, topics, "category %s", category)
		for _, topic := range topics {
			assert.NotEmpty(t, topic.Subject)
			assert.NotEmpty(t, topic.Context)
			assert.NotEmpty(t, topic.Problem)
			assert.NotEmpty(t, topic.Solution)
			assert.NotEmpty(t, topic.Link)
		}
	}
}

func TestPlatformProfiles(t *testing.T) {
	cat := newTestCatalog(t)

	twitter, err := cat.Profile(domain.PlatformTwitter)
	require.NoError(t, err)
	assert.Equal(t, domain.TweetMaxLength, twitter.MaxLength)

	linkedin, err := cat.Profile(domain.PlatformLinkedIn)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkedInMaxLength, linkedin.MaxLength)

	facebook, err := cat.Profile(domain.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, domain.FacebookMaxLength, facebook.MaxLength)
	assert.NotEmpty(t, facebook.Structure)
}

func TestProfileUnsupportedPlatform(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.Profile("mastodon")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.False(t, cat.HasPlatform("mastodon"))
}

func TestSelectRandomTopicIsDeterministicWithSeed(t *testing.T) {
	a, err := New(WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	b, err := New(WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		ta, err := a.SelectRandomTopic(domain.CategoryBusiness)
		require.NoError(t, err)
		tb, err := b.SelectRandomTopic(domain.CategoryBusiness)
		require.NoError(t, err)
		assert.Equal(t, ta, tb)
	}
}

func TestSelectRandomTopicInvalidCategory(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.SelectRandomTopic("cooking")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSelectRandomCategoryStaysInKnownSet(t *testing.T) {
	cat := newTestCatalog(t)
	known := domain.Categories()
	for i := 0; i < 20; i++ {
		assert.Contains(t, known, cat.SelectRandomCategory())
	}
}

func TestSelectVoiceAlwaysComplete(t *testing.T) {
	cat := newTestCatalog(t)
	for i := 0; i < 10; i++ {
		voice := cat.SelectVoice()
		assert.NotEmpty(t, voice.Style.Name)
		assert.NotEmpty(t, voice.Tone.Name)
		assert.NotEmpty(t, voice.Personality.Name)
	}
}

func TestWithTopicsFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := `business:
  - subject: Sujet de test
    context: Contexte de test
    problem: Problème de test
    solution: Solution de test
    link: https://www.techaware.net/test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := New(WithTopicsFile(path), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	topic, err := cat.SelectRandomTopic(domain.CategoryBusiness)
	require.NoError(t, err)
	assert.Equal(t, "Sujet de test", topic.Subject)
}

func TestNewRejectsIncompleteTopic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := `business:
  - subject: Sujet sans solution
    context: Contexte
    problem: Problème
    link: https://www.techaware.net/test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := New(WithTopicsFile(path))
	var cErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cErr)
}

func TestNewRejectsUnknownCategoryKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := `cooking:
  - subject: Sujet
    context: Contexte
    problem: Problème
    solution: Solution
    link: https://www.techaware.net/test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := New(WithTopicsFile(path))
	var cErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Error(), "cooking")
}

func TestSelectRandomCategoryWithSingleCategoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := `developer:
  - subject: Sujet
    context: Contexte
    problem: Problème
    solution: Solution
    link: https://www.techaware.net/test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := New(WithTopicsFile(path), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.CategoryDeveloper, cat.SelectRandomCategory())
	}
}

func TestNewRejectsMissingFile(t *testing.T) {
	_, err := New(WithTopicsFile(filepath.Join(t.TempDir(), "absent.yaml")))
	var cErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cErr)
}
