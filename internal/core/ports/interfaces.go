package ports

import (
	"context"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

// Brain is the generation invoker boundary the use cases depend on.
// Implementations receive the fully assembled prompt, call their backend,
// and return the extracted, cleaned post text.
type Brain interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TwitterGateway posts a validated tweet through the X API.
type TwitterGateway interface {
	PostTweet(ctx context.Context, tweet *domain.Tweet) (domain.Receipt, error)
}

// FacebookGateway posts a validated publication to a Facebook page feed.
type FacebookGateway interface {
	Post(ctx context.Context, pub *domain.FacebookPublication) (domain.Receipt, error)
}

// LinkedInGateway posts a validated publication as a LinkedIn UGC share.
type LinkedInGateway interface {
	Post(ctx context.Context, pub *domain.LinkedInPublication) (domain.Receipt, error)
}

// Storage keeps a trace of everything published and the per-day counters
// derived from it.
type Storage interface {
	RecordPublication(ctx context.Context, rec domain.PublicationRecord) error
	// Stats returns how many posts went out for platform on date lastDate.
	// The count resets whenever the date changes.
	Stats(ctx context.Context, platform domain.Platform) (count int, lastDate string, err error)
}

// UserAction is the operator's answer to a confirmation request.
type UserAction string

const (
	ActionApprove    UserAction = "approve"
	ActionRegenerate UserAction = "regenerate"
	ActionSkip       UserAction = "skip"
)

// Interaction asks a human to approve, regenerate, or skip a pending post.
type Interaction interface {
	Confirm(ctx context.Context, title, body string) (UserAction, error)
}
