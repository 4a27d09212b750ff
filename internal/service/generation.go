package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promoapi/internal/extractor"
	"promoapi/internal/model"
	"promoapi/internal/synthesizer"
)

const missingURLMessage = "Please provide a URL"

// GenerationService defines the single use case of the API.
type GenerationService interface {
	// Generate extracts the article at rawURL and returns promotional posts for it.
	// Extraction finishes before synthesis starts; no stage is retried.
	Generate(ctx context.Context, rawURL string) (*model.GenerationResult, error)
}

// generationService is a concrete implementation of GenerationService.
type generationService struct {
	extractor      extractor.ArticleExtractor
	synthesizer    synthesizer.PostSynthesizer
	recorder       Recorder
	tracer         trace.Tracer
	extractTimeout time.Duration
	synthTimeout   time.Duration
}

// Option configures the generation service.
type Option func(*generationService)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *generationService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithStageTimeouts bounds the extraction and synthesis stages.
// Zero leaves a stage bounded only by the request context.
func WithStageTimeouts(extract, synthesize time.Duration) Option {
	return func(s *generationService) {
		s.extractTimeout = extract
		s.synthTimeout = synthesize
	}
}

// NewGenerationService constructs a new GenerationService.
func NewGenerationService(ext extractor.ArticleExtractor, syn synthesizer.PostSynthesizer, opts ...Option) GenerationService {
	s := &generationService{
		extractor:   ext,
		synthesizer: syn,
		recorder:    noopRecorder{},
		tracer:      otel.Tracer("promoapi/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *generationService) Generate(ctx context.Context, rawURL string) (*model.GenerationResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	logger := zerolog.Ctx(ctx).With().Str("url", rawURL).Logger()
	ctx = logger.WithContext(ctx)

	if rawURL == "" {
		return nil, s.fail(ctx, model.StageIdle, model.Errorf(model.ErrMissingURL, missingURLMessage))
	}

	article, err := s.extract(ctx, rawURL)
	if err != nil {
		return nil, s.fail(ctx, stageOf(err), err)
	}

	posts, err := s.synthesize(ctx, article)
	if err != nil {
		return nil, s.fail(ctx, model.StageSynthesizing, err)
	}

	logger.Info().
		Str("stage", string(model.StageDone)).
		Int("posts", len(posts)).
		Str("title", article.Title).
		Msg("generation complete")
	s.recorder.RecordOutcome("")

	return &model.GenerationResult{Posts: posts, Title: article.Title}, nil
}

func (s *generationService) extract(ctx context.Context, rawURL string) (*model.ExtractedArticle, error) {
	ctx, span := s.tracer.Start(ctx, "extract", trace.WithAttributes(attribute.String("url.full", rawURL)))
	defer span.End()

	if s.extractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.extractTimeout)
		defer cancel()
	}

	zerolog.Ctx(ctx).Debug().Str("stage", string(model.StageFetching)).Msg("stage started")
	start := time.Now()
	article, err := s.extractor.Extract(ctx, rawURL)
	s.recorder.ObserveStage(model.StageExtracting, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(model.ErrorKindOf(err)))
		return nil, err
	}

	span.SetAttributes(attribute.Int("article.chars", model.Length(article.Body)))
	return article, nil
}

func (s *generationService) synthesize(ctx context.Context, article *model.ExtractedArticle) ([]model.PostCandidate, error) {
	ctx, span := s.tracer.Start(ctx, "synthesize")
	defer span.End()

	if s.synthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.synthTimeout)
		defer cancel()
	}

	zerolog.Ctx(ctx).Debug().Str("stage", string(model.StageSynthesizing)).Msg("stage started")
	start := time.Now()
	posts, err := s.synthesizer.Synthesize(ctx, article.Title, article.Body)
	s.recorder.ObserveStage(model.StageSynthesizing, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(model.ErrorKindOf(err)))
		return nil, err
	}

	span.SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

func (s *generationService) fail(ctx context.Context, stage model.Stage, err error) error {
	kind := model.ErrorKindOf(err)
	ev := zerolog.Ctx(ctx).Warn()
	if kind == model.ErrUnexpected || kind == model.ErrEmptyGeneration {
		ev = zerolog.Ctx(ctx).Error()
	}
	ev.Err(err).
		Str("stage", string(model.StageFailed)).
		Str("failed_at", string(stage)).
		Str("kind", string(kind)).
		Msg("generation failed")
	s.recorder.RecordOutcome(kind)
	return err
}

// stageOf names the extraction step an error came from.
func stageOf(err error) model.Stage {
	switch model.ErrorKindOf(err) {
	case model.ErrInvalidURL:
		return model.StageIdle
	case model.ErrFetchFailed:
		return model.StageFetching
	default:
		return model.StageExtracting
	}
}
