package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

func TestExtractPost(t *testing.T) {
	got, err := ExtractPost("<social_media_post>Hello world.</social_media_post>")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", got)
}

func TestExtractPostIgnoresSurroundingChatter(t *testing.T) {
	raw := "Voici votre publication:\n<social_media_post>\nContenu final 🚀\n</social_media_post>\nBonne journée!"
	got, err := ExtractPost(raw)
	require.NoError(t, err)
	assert.Equal(t, "Contenu final 🚀", got)
}

func TestExtractPostStripsBoldMarkup(t *testing.T) {
	got, err := ExtractPost("<social_media_post>**Titre** et texte</social_media_post>")
	require.NoError(t, err)
	assert.Equal(t, "Titre et texte", got)
}

func TestExtractPostTrimsPeriodPadding(t *testing.T) {
	got, err := ExtractPost("<social_media_post>...accroche forte...</social_media_post>")
	require.NoError(t, err)
	assert.Equal(t, "accroche forte", got)
}

func TestExtractPostEmptyInput(t *testing.T) {
	_, err := ExtractPost("   \n ")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Reason, "empty")
}

func TestExtractPostMissingTags(t *testing.T) {
	_, err := ExtractPost("just some text without delimiters")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Reason, "does not contain")
}

func TestExtractPostMultipleSpans(t *testing.T) {
	raw := "<social_media_post>un</social_media_post><social_media_post>deux</social_media_post>"
	_, err := ExtractPost(raw)
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Reason, "multiple")
}

func TestExtractPostMalformedOrder(t *testing.T) {
	_, err := ExtractPost("</social_media_post>texte<social_media_post>")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestExtractPostEmptySpan(t *testing.T) {
	_, err := ExtractPost("<social_media_post> ... </social_media_post>")
	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}
