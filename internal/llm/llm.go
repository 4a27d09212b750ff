// Package llm adapts generative model SDKs to synthesizer.Completer.
package llm

import (
	"context"
	"fmt"

	"promoapi/internal/config"
	"promoapi/internal/synthesizer"
)

// New returns the Completer for the configured provider. The API key is
// taken from cfg and never read from the environment here.
func New(ctx context.Context, cfg config.LLMConfig) (synthesizer.Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAI(cfg.APIKey, cfg.BaseURL)
	case config.ProviderGemini:
		return NewGeminiFromKey(ctx, cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
