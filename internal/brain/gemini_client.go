// Package brain implements the generation invoker on top of the Gemini API.
// It owns the single outbound call per invocation, the model fallback chain
// with its request budget, and the delimiter extraction of the returned
// post. Retrying over-length content is the caller's job, not this layer's.
package brain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

const defaultTimeout = 60 * time.Second

type modelConfig struct {
	Name string
	RPM  int
	RPD  int
}

// GeminiBrain calls Gemini with a fallback chain of models, each with its
// own per-minute and per-day request budget. Rate-limit and not-found
// errors advance the chain; anything else aborts the call.
type GeminiBrain struct {
	client  *genai.Client
	models  []modelConfig
	timeout time.Duration
	log     zerolog.Logger

	dailyCount   map[string]int
	minuteCount  map[string]int
	lastResetDay time.Time
	lastResetMin time.Time
	mu           sync.Mutex
}

func NewGeminiBrain(ctx context.Context, apiKey string, log zerolog.Logger) (*GeminiBrain, error) {
	if apiKey == "" {
		return nil, domain.NewConfigurationError("missing environment variable: GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &domain.ConfigurationError{Reason: "creating genai client", Cause: err}
	}

	return &GeminiBrain{
		client: client,
		models: []modelConfig{
			{Name: "gemini-2.5-flash", RPM: 10, RPD: 250},
			{Name: "gemini-2.5-flash-lite", RPM: 15, RPD: 1000},
		},
		timeout:      defaultTimeout,
		log:          log.With().Str("component", "brain").Logger(),
		dailyCount:   make(map[string]int),
		minuteCount:  make(map[string]int),
		lastResetDay: time.Now(),
		lastResetMin: time.Now(),
	}, nil
}

var _ ports.Brain = (*GeminiBrain)(nil)

// Generate issues one backend call with the assembled prompt and returns
// the extracted, cleaned post text. Every backend-level failure is wrapped
// into a GenerationError carrying the original message.
func (b *GeminiBrain) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	raw, err := b.tryGenerateWithFallback(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ExtractPost(raw)
}

func (b *GeminiBrain) tryGenerateWithFallback(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for _, cfg := range b.models {
		if !b.canUseModel(cfg) {
			b.log.Debug().Str("model", cfg.Name).Msg("request budget exhausted, skipping")
			continue
		}

		result, err := b.client.Models.GenerateContent(ctx, cfg.Name, genai.Text(prompt), nil)
		if err != nil {
			if isRetryableModelError(err) {
				b.log.Warn().Str("model", cfg.Name).Err(err).Msg("model unavailable, falling back")
				lastErr = err
				continue
			}
			return "", &domain.GenerationError{Reason: "backend call failed", Cause: err}
		}

		if result != nil && len(result.Candidates) > 0 &&
			result.Candidates[0].Content != nil && len(result.Candidates[0].Content.Parts) > 0 {
			b.recordUsage(cfg)
			return result.Candidates[0].Content.Parts[0].Text, nil
		}
		return "", &domain.GenerationError{Reason: "generated content is empty"}
	}

	return "", &domain.GenerationError{Reason: "all models exhausted", Cause: lastErr}
}

// isRetryableModelError matches rate-limit and unknown-model responses, the
// two cases where trying the next model in the chain can still succeed.
func isRetryableModelError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "exhausted") ||
		strings.Contains(s, "404") ||
		strings.Contains(s, "not found")
}

func (b *GeminiBrain) canUseModel(cfg modelConfig) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	if now.YearDay() != b.lastResetDay.YearDay() {
		b.dailyCount = make(map[string]int)
		b.lastResetDay = now
	}
	if now.Sub(b.lastResetMin) >= time.Minute {
		b.minuteCount = make(map[string]int)
		b.lastResetMin = now
	}
	if b.dailyCount[cfg.Name] >= cfg.RPD {
		return false
	}
	if b.minuteCount[cfg.Name] >= cfg.RPM {
		return false
	}
	return true
}

func (b *GeminiBrain) recordUsage(cfg modelConfig) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dailyCount[cfg.Name]++
	b.minuteCount[cfg.Name]++
}
