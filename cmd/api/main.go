package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"promoapi/docs"
	"promoapi/internal/config"
	"promoapi/internal/extractor"
	handlers "promoapi/internal/http/handler"
	"promoapi/internal/http/middleware"
	"promoapi/internal/llm"
	"promoapi/internal/otel"
	"promoapi/internal/service"
	"promoapi/internal/synthesizer"
)

const shutdownTimeout = 10 * time.Second

// @title Promo API
// @version 1.0
// @description Turns a web article into promotional social media posts.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	log.Logger = logger

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// The model credential is handed to the provider here and nowhere else
	completer, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm provider")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register http metrics")
	}
	recorder, err := service.NewPrometheusRecorder(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register generation metrics")
	}

	// Initialize extraction and synthesis stages and the service composing them
	fetcher := extractor.NewHTTPFetcher(
		extractor.WithTimeout(cfg.Fetch.Timeout),
		extractor.WithUserAgent(cfg.Fetch.UserAgent),
		extractor.WithMaxBodyBytes(cfg.Fetch.MaxBodyBytes),
	)
	ext := extractor.NewExtractor(fetcher,
		extractor.WithContainerSelector(containerSelector(cfg.Extract.Strategy)),
		extractor.WithLimits(cfg.Extract.ContentBudget, cfg.Extract.MinContentLength),
	)
	syn := synthesizer.New(completer,
		synthesizer.WithModel(cfg.LLM.Model),
		synthesizer.WithMaxTokens(cfg.LLM.MaxTokens),
		synthesizer.WithTemperature(cfg.LLM.Temperature),
	)
	genSvc := service.NewGenerationService(ext, syn,
		service.WithRecorder(recorder),
		service.WithStageTimeouts(cfg.Fetch.Timeout, cfg.LLM.Timeout),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             1 << 20,
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, genSvc, handlers.HealthInfo{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.Host = cfg.AppHost
		// Swagger UI with dynamic host and scheme
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	addr := ":" + cfg.Port

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("addr", addr).
			Str("provider", cfg.LLM.Provider).
			Str("model", cfg.LLM.Model).
			Str("extract_strategy", cfg.Extract.Strategy).
			Msg("server starting")
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info().Msg("server shutting down")
		return errors.Join(
			app.ShutdownWithContext(shutdownCtx),
			shutdownTracing(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
}

func newLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", "promoapi").Logger()
}

func containerSelector(strategy string) extractor.ContainerSelector {
	if strategy == config.StrategyReadability {
		return extractor.NewReadabilitySelector()
	}
	return extractor.NewSelectorChain()
}
