package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/brain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/catalog"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/config"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/publisher"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/sites/facebook"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/sites/linkedin"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/sites/twitter"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/storage"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/ui/console"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/ui/telegram"
	"github.com/Tech-Aware/TechAware.social-media-automator/pkg/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "generate and show content without posting")
	category := flag.String("category", "", "force a topic category (business, developer, slides)")
	autoYes := flag.Bool("yes", false, "skip the confirmation prompt and approve everything")
	topicsFile := flag.String("topics", "", "override the embedded topics file")
	flag.Parse()

	config.Load()
	log := logger.New()

	platforms, err := resolvePlatforms(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(2)
	}

	fmt.Println("🤖 Social Media Automator starting...")
	ctx := context.Background()

	var catOpts []catalog.Option
	if *topicsFile != "" {
		catOpts = append(catOpts, catalog.WithTopicsFile(*topicsFile))
	}
	cat, err := catalog.New(catOpts...)
	if err != nil {
		fatal(log, err, "loading topic catalog")
	}

	forced, err := resolveCategory(*category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(2)
	}

	apiKey, err := config.GetGeminiAPIKey()
	if err != nil {
		fatal(log, err, "reading generation credentials")
	}
	myBrain, err := brain.NewGeminiBrain(ctx, apiKey, log)
	if err != nil {
		fatal(log, err, "starting generation backend")
	}

	store := openStorage(ctx, log)
	ui := openInteraction(log, *autoYes)

	// Credentials for every selected platform are checked here, before any
	// generation runs. A missing variable must not cost a backend call or an
	// operator approval.
	var posters map[domain.Platform]postFunc
	if !*dryRun {
		posters, err = buildPosters(ctx, platforms, log)
		if err != nil {
			fatal(log, err, "loading platform credentials")
		}
	}

	failed := false
	for _, platform := range platforms {
		fmt.Printf("\n--- 📣 %s ---\n", platform)
		if err := runPlatform(ctx, platform, myBrain, cat, forced, ui, store, log, posters[platform]); err != nil {
			log.Error().Err(err).Str("platform", string(platform)).Msg("run failed")
			fmt.Println("❌", err)
			failed = true
			continue
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("\n✅ Done.")
}

func fatal(log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintln(os.Stderr, "❌", err)
	os.Exit(1)
}

// resolvePlatforms maps the positional arguments onto known platforms. With
// no arguments the historical default is Facebook then Twitter.
func resolvePlatforms(args []string) ([]domain.Platform, error) {
	if len(args) == 0 {
		return []domain.Platform{domain.PlatformFacebook, domain.PlatformTwitter}, nil
	}
	var out []domain.Platform
	for _, a := range args {
		switch strings.ToLower(a) {
		case "twitter", "x":
			out = append(out, domain.PlatformTwitter)
		case "facebook":
			out = append(out, domain.PlatformFacebook)
		case "linkedin":
			out = append(out, domain.PlatformLinkedIn)
		default:
			return nil, fmt.Errorf("unknown platform %q (expected twitter, facebook or linkedin)", a)
		}
	}
	return out, nil
}

func resolveCategory(name string) (domain.TopicCategory, error) {
	if name == "" {
		return "", nil
	}
	c := domain.TopicCategory(strings.ToLower(name))
	for _, known := range domain.Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

func openStorage(ctx context.Context, log zerolog.Logger) ports.Storage {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		store, err := storage.NewPostgresStorage(ctx, dbURL)
		if err == nil {
			fmt.Println("🐘 Storage: PostgreSQL")
			return store
		}
		log.Warn().Err(err).Msg("postgres unavailable, falling back to JSON file")
	}
	store, err := storage.NewJSONStorage("data/publications.json")
	if err != nil {
		fatal(log, err, "opening JSON storage")
	}
	fmt.Println("📄 Storage: JSON file")
	return store
}

func openInteraction(log zerolog.Logger, autoYes bool) ports.Interaction {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if !autoYes && token != "" && chatID != "" {
		ui, err := telegram.NewUI(token, chatID, log)
		if err == nil {
			fmt.Println("💬 Approval: Telegram")
			return ui
		}
		log.Warn().Err(err).Msg("telegram unavailable, falling back to console")
	}
	ui := console.NewUI(os.Stdin, os.Stdout)
	ui.AutoApprove = autoYes
	return ui
}

// postFunc publishes approved text to one platform. Nil under -dry-run.
type postFunc func(ctx context.Context, text string) (domain.Receipt, error)

// buildPosters loads the credentials for each selected platform and wires
// the matching gateway and poster.
func buildPosters(ctx context.Context, platforms []domain.Platform, log zerolog.Logger) (map[domain.Platform]postFunc, error) {
	out := make(map[domain.Platform]postFunc, len(platforms))
	for _, platform := range platforms {
		if _, ok := out[platform]; ok {
			continue
		}
		switch platform {
		case domain.PlatformTwitter:
			creds, err := config.GetTwitterCredentials()
			if err != nil {
				return nil, err
			}
			out[platform] = publisher.NewTweetPoster(twitter.NewClient(creds, log), log).Execute

		case domain.PlatformFacebook:
			creds, err := config.GetFacebookCredentials()
			if err != nil {
				return nil, err
			}
			client := facebook.NewClient(creds, log)
			if err := client.Initialize(ctx); err != nil {
				log.Warn().Err(err).Msg("facebook page token exchange failed")
			}
			poster := publisher.NewFacebookPoster(client, log)
			privacy := os.Getenv("FACEBOOK_PRIVACY")
			out[platform] = func(ctx context.Context, text string) (domain.Receipt, error) {
				return poster.Execute(ctx, text, privacy)
			}

		case domain.PlatformLinkedIn:
			creds, err := config.GetLinkedInCredentials()
			if err != nil {
				return nil, err
			}
			out[platform] = publisher.NewLinkedInPoster(linkedin.NewClient(creds, log), log).Execute
		}
	}
	return out, nil
}

func runPlatform(ctx context.Context, platform domain.Platform, myBrain ports.Brain, cat *catalog.Catalog,
	category domain.TopicCategory, ui ports.Interaction, store ports.Storage, log zerolog.Logger, post postFunc) error {

	var gen *publisher.Generator
	switch platform {
	case domain.PlatformTwitter:
		gen = publisher.NewTweetGenerator(myBrain, cat, log)
	case domain.PlatformFacebook:
		gen = publisher.NewFacebookGenerator(myBrain, cat, log)
	case domain.PlatformLinkedIn:
		gen = publisher.NewLinkedInGenerator(myBrain, cat, log)
	}

	for {
		text, err := gen.Execute(ctx, category)
		if err != nil {
			return err
		}

		action, err := ui.Confirm(ctx, fmt.Sprintf("%s post", platform), text)
		if err != nil {
			return err
		}
		switch action {
		case ports.ActionRegenerate:
			fmt.Println("🔄 Regenerating...")
			continue
		case ports.ActionSkip:
			fmt.Println("⏭️  Skipped.")
			return nil
		}

		if post == nil {
			fmt.Println("🧪 Dry run, nothing posted.")
			return nil
		}

		receipt, err := post(ctx, text)
		if err != nil {
			return err
		}

		rec := domain.PublicationRecord{
			Platform: platform,
			PostID:   receipt.ID,
			Text:     text,
			PostedAt: time.Now(),
		}
		if err := store.RecordPublication(ctx, rec); err != nil {
			log.Warn().Err(err).Msg("publication posted but not recorded")
		}
		count, _, _ := store.Stats(ctx, platform)
		fmt.Printf("🚀 Posted to %s (id %s, %d today)\n", platform, receipt.ID, count)
		return nil
	}
}
