package domain

import "strings"

// Publication entities wrap post text and enforce the destination platform's
// constraints. They are validated at construction and again on every
// mutation, so a held value is always publishable.

// Tweet is a validated Twitter/X post.
type Tweet struct {
	text string
}

// NewTweet validates text against Twitter's constraints.
func NewTweet(text string) (*Tweet, error) {
	t := &Tweet{text: text}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tweet) Text() string { return t.text }

// SetText replaces the tweet text, rejecting invalid content.
func (t *Tweet) SetText(text string) error {
	old := t.text
	t.text = text
	if err := t.Validate(); err != nil {
		t.text = old
		return err
	}
	return nil
}

func (t *Tweet) Validate() error {
	if strings.TrimSpace(t.text) == "" {
		return NewValidationError("tweet cannot be empty")
	}
	if n := len([]rune(t.text)); n > TweetMaxLength {
		return NewValidationError("tweet must be %d characters or less (current: %d)", TweetMaxLength, n)
	}
	return nil
}

// LinkedInPublication is a validated LinkedIn post.
type LinkedInPublication struct {
	text string
}

func NewLinkedInPublication(text string) (*LinkedInPublication, error) {
	p := &LinkedInPublication{text: text}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LinkedInPublication) Text() string { return p.text }

func (p *LinkedInPublication) SetText(text string) error {
	old := p.text
	p.text = text
	if err := p.Validate(); err != nil {
		p.text = old
		return err
	}
	return nil
}

func (p *LinkedInPublication) Validate() error {
	if strings.TrimSpace(p.text) == "" {
		return NewValidationError("linkedin publication text cannot be empty")
	}
	if n := len([]rune(p.text)); n > LinkedInMaxLength {
		return NewValidationError("linkedin publication text must be %d characters or less (current: %d)", LinkedInMaxLength, n)
	}
	return nil
}

// Privacy values accepted by the Facebook feed API.
const (
	PrivacyPublic  = "PUBLIC"
	PrivacyFriends = "FRIENDS"
	PrivacyOnlyMe  = "ONLY_ME"
)

// FacebookPublication is a validated Facebook post with a privacy setting.
type FacebookPublication struct {
	text    string
	privacy string
}

// NewFacebookPublication validates text and privacy. An empty privacy
// defaults to PUBLIC; the value is case-normalized to upper.
func NewFacebookPublication(text, privacy string) (*FacebookPublication, error) {
	if privacy == "" {
		privacy = PrivacyPublic
	}
	p := &FacebookPublication{text: text, privacy: strings.ToUpper(privacy)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *FacebookPublication) Text() string    { return p.text }
func (p *FacebookPublication) Privacy() string { return p.privacy }

func (p *FacebookPublication) SetText(text string) error {
	old := p.text
	p.text = text
	if err := p.Validate(); err != nil {
		p.text = old
		return err
	}
	return nil
}

// SetPrivacy updates the privacy setting, case-insensitively.
func (p *FacebookPublication) SetPrivacy(privacy string) error {
	old := p.privacy
	p.privacy = strings.ToUpper(privacy)
	if err := p.Validate(); err != nil {
		p.privacy = old
		return err
	}
	return nil
}

func (p *FacebookPublication) Validate() error {
	if strings.TrimSpace(p.text) == "" {
		return NewValidationError("facebook publication text cannot be empty")
	}
	if n := len([]rune(p.text)); n > FacebookMaxLength {
		return NewValidationError("facebook publication text must be %d characters or less (current: %d)", FacebookMaxLength, n)
	}
	switch p.privacy {
	case PrivacyPublic, PrivacyFriends, PrivacyOnlyMe:
	default:
		return NewValidationError("invalid privacy setting %q, must be one of: %s, %s, %s",
			p.privacy, PrivacyPublic, PrivacyFriends, PrivacyOnlyMe)
	}
	return nil
}
