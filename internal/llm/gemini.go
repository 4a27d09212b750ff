package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"promoapi/internal/synthesizer"
)

// Ensure Gemini implements synthesizer.Completer at compile time.
var _ synthesizer.Completer = (*Gemini)(nil)

// Gemini implements synthesizer.Completer using Google Gemini.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini completer around an existing client.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client}
}

// NewGeminiFromKey creates a Gemini API client authenticated with apiKey.
// A non-empty baseURL overrides the API endpoint.
func NewGeminiFromKey(ctx context.Context, apiKey, baseURL string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key missing; set GEMINI_API_KEY")
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return NewGemini(client), nil
}

// Complete generates content for the user turn with the system instruction.
func (g *Gemini) Complete(ctx context.Context, req synthesizer.CompletionRequest) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.User}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if result == nil {
		return "", errors.New("gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a completion request.
func BuildConfig(req synthesizer.CompletionRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
		Temperature: &temp,
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return config
}
