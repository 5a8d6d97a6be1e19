// Package prompting assembles the instruction string handed to the
// generation backend. The builder is single-use per generation call: reset,
// configure, build, discard.
package prompting

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/catalog"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

// Builder composes topic, platform guidelines, brand voice and custom
// instructions into one prompt. Not safe for concurrent use; each
// generation owns its builder state.
type Builder struct {
	catalog *catalog.Catalog
	log     zerolog.Logger

	platform domain.Platform
	category domain.TopicCategory
	topic    *domain.Topic
	custom   string
}

func NewBuilder(cat *catalog.Catalog, log zerolog.Logger) *Builder {
	return &Builder{catalog: cat, log: log.With().Str("component", "prompt_builder").Logger()}
}

// Reset clears the builder back to its initial state. Idempotent.
func (b *Builder) Reset() *Builder {
	b.platform = ""
	b.category = ""
	b.topic = nil
	b.custom = ""
	return b
}

// Platform returns the currently configured platform, empty when unset.
func (b *Builder) Platform() domain.Platform { return b.platform }

// TopicCategory returns the currently configured category, empty when unset.
func (b *Builder) TopicCategory() domain.TopicCategory { return b.category }

// SelectedTopic returns the eagerly drawn topic, nil when unset.
func (b *Builder) SelectedTopic() *domain.Topic { return b.topic }

// SetPlatformAndTopicCategory validates and stores the target platform and
// topic category (both case-insensitive) and immediately draws a random
// topic from the category. On failure no state is mutated, so a later
// Build still reports the builder as unconfigured.
func (b *Builder) SetPlatformAndTopicCategory(platform, category string) (*Builder, error) {
	p := domain.Platform(strings.ToLower(strings.TrimSpace(platform)))
	c := domain.TopicCategory(strings.ToLower(strings.TrimSpace(category)))

	if p == "" || !b.catalog.HasPlatform(p) {
		return b, domain.NewValidationError("unsupported platform: %s", platform)
	}

	topic, err := b.catalog.SelectRandomTopic(c)
	if err != nil {
		return b, err
	}

	b.platform = p
	b.category = c
	b.topic = &topic
	b.log.Debug().Str("platform", string(p)).Str("category", string(c)).
		Str("subject", topic.Subject).Msg("builder configured")
	return b, nil
}

// AddCustomInstructions stores free-text guidance appended at the end of the
// built prompt. The text is trimmed; empty input clears the block.
func (b *Builder) AddCustomInstructions(instructions string) *Builder {
	b.custom = strings.TrimSpace(instructions)
	return b
}

// Build assembles the final prompt. It requires platform, category, and
// topic to all be set and fails with a ConfigurationError otherwise.
func (b *Builder) Build() (string, error) {
	if b.platform == "" || b.category == "" || b.topic == nil {
		return "", domain.NewConfigurationError("platform and topic must be set before building prompt")
	}

	profile, err := b.catalog.Profile(b.platform)
	if err != nil {
		// Unreachable while the platform check in the setter holds.
		return "", &domain.ConfigurationError{Reason: "building prompt", Cause: err}
	}
	voice := b.catalog.SelectVoice()

	brandVoice := fmt.Sprintf(`Voix de marque sélectionnée pour cette publication:

Style: %s
%s

Ton: %s
%s

Personnalité: %s
%s`,
		voice.Style.Name, voice.Style.Description,
		voice.Tone.Name, voice.Tone.Description,
		voice.Personality.Name, voice.Personality.Description)

	parts := []string{
		fmt.Sprintf("Générez une publication %s originale et engageante sur le sujet suivant de Tech Aware:", b.platform),
		"\nInformations sur le sujet:",
		"Sujet: " + b.topic.Subject,
		"Contexte: " + b.topic.Context,
		"Problème: " + b.topic.Problem,
		"Solution: " + b.topic.Solution,
		"URL à inclure: " + b.topic.Link,
		"\nVoix de marque à adopter pour cette publication:",
		brandVoice,
		fmt.Sprintf("\nStructure pour %s:", b.platform),
		profile.Structure,
		"\nConsignes importantes:",
		"1. Créez un contenu UNIQUE et ORIGINAL",
		fmt.Sprintf("2. Adaptez la voix sélectionnée au format %s", b.platform),
		"3. Utilisez des emojis pertinents avec modération",
		fmt.Sprintf("4. Respectez la limite de %d caractères", profile.MaxLength),
		"5. Rédigez en français avec un style naturel et engageant",
		"\nInstructions CRUCIALES pour l'URL:",
		"- Incluez l'URL en texte brut, exactement comme fournie",
		"- N'utilisez PAS de syntaxe Markdown ou de crochets",
		"- CORRECT: 'Découvrez plus sur https://www.techaware.net/pour-les-entreprises'",
		"- INCORRECT: '[Découvrez plus](https://www.techaware.net/pour-les-entreprises)'",
		"- INCORRECT: '[Tech Aware pour les Entreprises](lien)'",
		"\nFormat OBLIGATOIRE de la réponse:",
		"1. Votre réponse DOIT commencer par " + domain.PostOpenTag,
		"2. Votre réponse DOIT se terminer par " + domain.PostCloseTag,
		"3. La publication COMPLÈTE doit être à l'intérieur de ces balises",
		"4. Ne mettez RIEN avant ou après ces balises",
		"\nExemple de format (à ne pas copier):",
		domain.PostOpenTag,
		"Votre contenu ici...",
		"URL en texte brut...",
		domain.PostCloseTag,
	}

	if b.custom != "" {
		parts = append(parts, "\nInstructions supplémentaires:\n"+b.custom)
	}

	prompt := strings.Join(parts, "\n")
	b.log.Debug().
		Str("style", voice.Style.Name).
		Str("tone", voice.Tone.Name).
		Str("personality", voice.Personality.Name).
		Int("prompt_len", len(prompt)).
		Msg("prompt built")
	return prompt, nil
}
