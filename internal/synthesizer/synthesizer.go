package synthesizer

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"promoapi/internal/model"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultMaxTokens bounds the completion length.
	DefaultMaxTokens = 500
	// DefaultTemperature favours varied phrasing over reproducibility.
	DefaultTemperature = 0.8

	emptyGenerationMessage = "Failed to generate tweets. Please try again."
)

// CompletionRequest is a single system+user chat turn.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Completer generates one text completion.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// PostSynthesizer produces promotional posts for an article.
type PostSynthesizer interface {
	Synthesize(ctx context.Context, title, body string) ([]model.PostCandidate, error)
}

// Ensure Synthesizer implements PostSynthesizer at compile time.
var _ PostSynthesizer = (*Synthesizer)(nil)

// Synthesizer asks a Completer for posts and parses its output.
type Synthesizer struct {
	completer   Completer
	model       string
	maxTokens   int
	temperature float64
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithModel sets the model identifier passed to the Completer.
func WithModel(m string) Option {
	return func(s *Synthesizer) {
		if m != "" {
			s.model = m
		}
	}
}

// WithMaxTokens sets the completion length bound.
func WithMaxTokens(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Synthesizer) {
		if t >= 0 {
			s.temperature = t
		}
	}
}

// New creates a Synthesizer backed by completer.
func New(completer Completer, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		completer:   completer,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildRequest returns the completion request for an article.
func (s *Synthesizer) BuildRequest(title, body string) CompletionRequest {
	return CompletionRequest{
		Model:       s.model,
		System:      SystemPrompt,
		User:        BuildUserPrompt(title, body),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}
}

// Synthesize generates posts for the article. It fails with
// model.ErrEmptyGeneration when no usable post survives parsing.
func (s *Synthesizer) Synthesize(ctx context.Context, title, body string) ([]model.PostCandidate, error) {
	raw, err := s.completer.Complete(ctx, s.BuildRequest(title, body))
	if err != nil {
		var domainErr *model.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, model.WrapError(model.ErrUnexpected, err, "%s", err.Error())
	}

	posts := ParsePosts(raw)
	zerolog.Ctx(ctx).Debug().
		Int("raw_chars", len(raw)).
		Int("posts", len(posts)).
		Msg("completion parsed")

	if len(posts) == 0 {
		return nil, model.Errorf(model.ErrEmptyGeneration, emptyGenerationMessage)
	}
	return posts, nil
}
