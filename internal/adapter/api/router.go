package api

import (
	"whatameating/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// multipartOverhead leaves room for the form envelope around the photo.
const multipartOverhead = 64 << 10

func NewApp(cfg *config.Config) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   cfg.AppName,
		BodyLimit: cfg.UploadMaxSize + multipartOverhead,
	})
}

func SetupRouter(app *fiber.App, handler *UploadHandler, cfg *config.Config) {
	// Middleware
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": cfg.AppVersion,
			"env":     cfg.Env,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/upload", handler.HandleUpload)

	// Static assets last so they never shadow the API routes.
	app.Static("/", cfg.StaticDir)
}
