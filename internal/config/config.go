// Package config loads per-service credentials from the environment. Each
// loader fails fast with a ConfigurationError naming the first missing
// variable, so no generation or posting is attempted with a partial setup.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
)

// Load pulls a .env file into the environment when one exists. A missing
// file is not an error; explicit environment variables always win.
func Load() {
	_ = godotenv.Load()
}

// TwitterCredentials is the OAuth1 user context for the X API.
type TwitterCredentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

func GetTwitterCredentials() (TwitterCredentials, error) {
	var c TwitterCredentials
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"CONSUMER_KEY", &c.ConsumerKey},
		{"CONSUMER_SECRET", &c.ConsumerSecret},
		{"ACCESS_TOKEN", &c.AccessToken},
		{"ACCESS_TOKEN_SECRET", &c.AccessTokenSecret},
	} {
		if *v.dst = os.Getenv(v.name); *v.dst == "" {
			return TwitterCredentials{}, domain.NewConfigurationError("missing environment variable: %s", v.name)
		}
	}
	return c, nil
}

// FacebookCredentials is the Graph API app and page setup.
type FacebookCredentials struct {
	AppID       string
	AppSecret   string
	AccessToken string
	PageID      string
}

func GetFacebookCredentials() (FacebookCredentials, error) {
	var c FacebookCredentials
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"FACEBOOK_APP_ID", &c.AppID},
		{"FACEBOOK_APP_SECRET", &c.AppSecret},
		{"FACEBOOK_ACCESS_TOKEN", &c.AccessToken},
		{"FACEBOOK_PAGE_ID", &c.PageID},
	} {
		if *v.dst = os.Getenv(v.name); *v.dst == "" {
			return FacebookCredentials{}, domain.NewConfigurationError("missing environment variable: %s", v.name)
		}
	}
	return c, nil
}

// LinkedInCredentials is the member token setup for ugcPosts.
type LinkedInCredentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	UserID       string
}

func GetLinkedInCredentials() (LinkedInCredentials, error) {
	var c LinkedInCredentials
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"LINKEDIN_CLIENT_ID", &c.ClientID},
		{"LINKEDIN_CLIENT_SECRET", &c.ClientSecret},
		{"LINKEDIN_ACCESS_TOKEN", &c.AccessToken},
		{"LINKEDIN_USER_ID", &c.UserID},
	} {
		if *v.dst = os.Getenv(v.name); *v.dst == "" {
			return LinkedInCredentials{}, domain.NewConfigurationError("missing environment variable: %s", v.name)
		}
	}
	return c, nil
}

// GetGeminiAPIKey returns the generation backend key.
func GetGeminiAPIKey() (string, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", domain.NewConfigurationError("missing environment variable: GEMINI_API_KEY")
	}
	return key, nil
}
