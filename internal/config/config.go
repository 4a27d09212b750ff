package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Extraction strategies accepted by EXTRACT_STRATEGY.
const (
	StrategySelector    = "selector"
	StrategyReadability = "readability"
)

// LLM providers accepted by LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; NewsletterTweetBot/1.0)"

// FetchConfig holds settings for the outbound article fetch.
type FetchConfig struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

// ExtractConfig holds content extraction limits.
type ExtractConfig struct {
	Strategy         string
	ContentBudget    int
	MinContentLength int
}

// LLMConfig holds generative model settings. APIKey is the only credential
// the service consumes; it is passed to the provider at construction.
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	LogLevel       string
	SwaggerEnabled bool
	Fetch          FetchConfig
	Extract        ExtractConfig
	LLM            LLMConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"), // default only for non-sensitive value
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		Fetch: FetchConfig{
			Timeout:      getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
			UserAgent:    getEnv("FETCH_USER_AGENT", defaultUserAgent),
			MaxBodyBytes: int64(getEnvInt("FETCH_MAX_BODY_BYTES", 5<<20)),
		},
		Extract: ExtractConfig{
			Strategy:         strings.ToLower(getEnv("EXTRACT_STRATEGY", StrategySelector)),
			ContentBudget:    getEnvInt("CONTENT_BUDGET", 12000),
			MinContentLength: getEnvInt("MIN_CONTENT_LENGTH", 100),
		},
		LLM: LLMConfig{
			Provider:    provider,
			APIKey:      providerAPIKey(provider),
			BaseURL:     providerBaseURL(provider),
			Model:       getEnv("LLM_MODEL", defaultModel(provider)),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.8),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 500),
			Timeout:     getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate reports configuration that would make the service unusable.
func (c *AppConfig) Validate() error {
	var errs []error
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider))
	}
	if c.LLM.APIKey == "" {
		errs = append(errs, fmt.Errorf("api key for provider %q is required", c.LLM.Provider))
	}
	switch c.Extract.Strategy {
	case StrategySelector, StrategyReadability:
	default:
		errs = append(errs, fmt.Errorf("unsupported EXTRACT_STRATEGY %q", c.Extract.Strategy))
	}
	if c.Extract.ContentBudget < c.Extract.MinContentLength {
		errs = append(errs, errors.New("CONTENT_BUDGET must not be smaller than MIN_CONTENT_LENGTH"))
	}
	return errors.Join(errs...)
}

func providerAPIKey(provider string) string {
	if provider == ProviderGemini {
		return getEnv("GEMINI_API_KEY", "")
	}
	return getEnv("OPENAI_API_KEY", "")
}

func providerBaseURL(provider string) string {
	if provider == ProviderGemini {
		return getEnv("GEMINI_BASE_URL", "")
	}
	return getEnv("OPENAI_BASE_URL", "")
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "gpt-4o-mini"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
