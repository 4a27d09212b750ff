package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"promoapi/internal/synthesizer"
)

// Ensure OpenAI implements synthesizer.Completer at compile time.
var _ synthesizer.Completer = (*OpenAI)(nil)

// OpenAI implements synthesizer.Completer with the official openai-go SDK
// (chat completions). BaseURL allows OpenAI-compatible backends.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI creates an OpenAI completer authenticated with apiKey.
func NewOpenAI(apiKey, baseURL string, extra ...option.RequestOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY")
	}
	// A failed generation is reported, never retried.
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	opts = append(opts, extra...)
	return &OpenAI{client: openai.NewClient(opts...)}, nil
}

// Complete sends one system+user turn and returns the first choice.
func (o *OpenAI) Complete(ctx context.Context, req synthesizer.CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
