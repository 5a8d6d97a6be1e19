package prompting

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/catalog"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	cat, err := catalog.New(catalog.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	return NewBuilder(cat, zerolog.Nop())
}

func TestBuildBeforeConfigure(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.Build()
	var cErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cErr)
}

func TestSetPlatformAndTopicCategory(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("twitter", "developer")
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformTwitter, b.Platform())
	assert.Equal(t, domain.CategoryDeveloper, b.TopicCategory())
	require.NotNil(t, b.SelectedTopic())
	assert.NotEmpty(t, b.SelectedTopic().Subject)
}

func TestSetPlatformIsCaseInsensitive(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("  LinkedIn ", "BUSINESS")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinkedIn, b.Platform())
	assert.Equal(t, domain.CategoryBusiness, b.TopicCategory())
}

func TestSetUnsupportedPlatformLeavesStateUntouched(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("mastodon", "business")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	assert.Empty(t, b.Platform())
	assert.Empty(t, b.TopicCategory())
	assert.Nil(t, b.SelectedTopic())

	_, err = b.Build()
	var cErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cErr)
}

func TestSetUnknownCategoryLeavesStateUntouched(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("twitter", "cooking")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, b.Platform())
	assert.Nil(t, b.SelectedTopic())
}

func TestBuildAssemblesPrompt(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("twitter", "business")
	require.NoError(t, err)

	prompt, err := b.Build()
	require.NoError(t, err)

	assert.Contains(t, prompt, b.SelectedTopic().Subject)
	assert.Contains(t, prompt, b.SelectedTopic().Link)
	assert.Contains(t, prompt, strconv.Itoa(domain.TweetMaxLength))
	assert.Contains(t, prompt, domain.PostOpenTag)
	assert.Contains(t, prompt, domain.PostCloseTag)
	assert.Contains(t, prompt, "Voix de marque")
}

func TestBuildAppendsCustomInstructions(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("facebook", "slides")
	require.NoError(t, err)

	prompt, err := b.AddCustomInstructions("  Mentionner la prochaine conférence.  ").Build()
	require.NoError(t, err)
	assert.Contains(t, prompt, "Instructions supplémentaires:")
	assert.Contains(t, prompt, "Mentionner la prochaine conférence.")
}

func TestBuildWithoutCustomInstructionsOmitsBlock(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("facebook", "slides")
	require.NoError(t, err)

	prompt, err := b.Build()
	require.NoError(t, err)
	assert.NotContains(t, prompt, "Instructions supplémentaires:")
}

func TestResetClearsState(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.SetPlatformAndTopicCategory("twitter", "business")
	require.NoError(t, err)

	b.AddCustomInstructions("extra").Reset()
	assert.Empty(t, b.Platform())
	assert.Empty(t, b.TopicCategory())
	assert.Nil(t, b.SelectedTopic())

	_, err = b.Build()
	require.Error(t, err)
}
