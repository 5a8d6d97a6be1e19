package domain

import "time"

// Platform identifies a publishing destination.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformFacebook Platform = "facebook"
	PlatformLinkedIn Platform = "linkedin"
)

// Character ceilings enforced by each platform's API.
const (
	TweetMaxLength    = 280
	LinkedInMaxLength = 3000
	FacebookMaxLength = 63206
)

// Delimiter tags the generation backend must wrap its payload in. The pair
// is a textual convention shared by the prompt builder (which demands it)
// and the extraction step (which relies on it). Case-sensitive.
const (
	PostOpenTag  = "<social_media_post>"
	PostCloseTag = "</social_media_post>"
)

// TopicCategory groups topics by target audience.
type TopicCategory string

const (
	CategoryBusiness  TopicCategory = "business"
	CategoryDeveloper TopicCategory = "developer"
	CategorySlides    TopicCategory = "slides"
)

// Categories lists every known topic category.
func Categories() []TopicCategory {
	return []TopicCategory{CategoryBusiness, CategoryDeveloper, CategorySlides}
}

// Topic is one entry of the topic knowledge base. Immutable after load.
type Topic struct {
	Subject  string `yaml:"subject"`
	Context  string `yaml:"context"`
	Problem  string `yaml:"problem"`
	Solution string `yaml:"solution"`
	Link     string `yaml:"link"`
}

// PlatformProfile carries the length ceiling and the structural authoring
// guidance for one destination platform.
type PlatformProfile struct {
	Platform  Platform
	MaxLength int
	Structure string
}

// VoiceElement is a named brand-voice trait with its description.
type VoiceElement struct {
	Name        string
	Description string
}

// VoiceProfile is the style/tone/personality combination drawn for a single
// generation. Not persisted across calls.
type VoiceProfile struct {
	Style       VoiceElement
	Tone        VoiceElement
	Personality VoiceElement
}

// Receipt is what a gateway returns after a successful post. Every platform
// surfaces at least an identifier.
type Receipt struct {
	ID  string
	Raw map[string]any
}

// PublicationRecord is the persisted trace of one published post.
type PublicationRecord struct {
	Platform Platform  `json:"platform"`
	PostID   string    `json:"post_id"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
}
