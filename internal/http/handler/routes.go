package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"promoapi/internal/model"
	"promoapi/internal/service"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	URL string `json:"url" example:"https://example.com/blog/post"`
}

// GenerateResponse is the success body of POST /api/generate.
type GenerateResponse struct {
	Tweets []string `json:"tweets"`
	Title  string   `json:"title"`
}

// HealthInfo describes the configured model backend for /health.
type HealthInfo struct {
	Provider string
	Model    string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate between HTTP and the generation service.
func RegisterRoutes(app *fiber.App, genSvc service.GenerationService, info HealthInfo) {
	app.Get("/health", HealthCheck(info))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/generate", Generate(genSvc))
}

// HealthCheck reports readiness and the configured model backend.
func HealthCheck(info HealthInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"provider": info.Provider,
			"model":    info.Model,
		})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Generate godoc
// @Summary Generate promotional posts for an article
// @Description Fetches the article at url, extracts its text and returns up to five promotional posts.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Article URL"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/generate [post]
func Generate(genSvc service.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req GenerateRequest
		if body := c.Body(); len(strings.TrimSpace(string(body))) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				return writeError(c, fiber.StatusBadRequest, string(model.ErrInvalidBody), "Invalid request body")
			}
		}

		res, err := genSvc.Generate(c.UserContext(), req.URL)
		if err != nil {
			return writeDomainError(c, err)
		}

		return c.JSON(GenerateResponse{Tweets: res.Texts(), Title: res.Title})
	}
}
