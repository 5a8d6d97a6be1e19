package brain

import (
	"strings"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

// ExtractPost pulls the post payload out of a raw backend response. The
// response must contain exactly one span wrapped in the delimiter tag pair;
// zero or multiple spans are contract violations. The extracted text is
// trimmed, the bold-markup artifact "**" removed, and period padding
// stripped from both ends.
func ExtractPost(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &domain.GenerationError{Reason: "generated content is empty"}
	}

	opens := strings.Count(raw, domain.PostOpenTag)
	closes := strings.Count(raw, domain.PostCloseTag)
	if opens == 0 || closes == 0 {
		return "", &domain.GenerationError{Reason: "generated content does not contain " + domain.PostOpenTag + " tags"}
	}
	if opens > 1 || closes > 1 {
		return "", &domain.GenerationError{Reason: "generated content contains multiple delimited spans"}
	}

	start := strings.Index(raw, domain.PostOpenTag) + len(domain.PostOpenTag)
	end := strings.Index(raw, domain.PostCloseTag)
	if end < start {
		return "", &domain.GenerationError{Reason: "malformed delimiter tags in generated content"}
	}

	content := strings.TrimSpace(raw[start:end])
	content = strings.ReplaceAll(content, "**", "")
	content = strings.Trim(content, ".")
	content = strings.TrimSpace(content)

	if content == "" {
		return "", &domain.GenerationError{Reason: "generated content is empty"}
	}
	return content, nil
}
