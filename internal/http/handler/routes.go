package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"entryapi/internal/config"
	"entryapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all coordination lives in the entry service.
func RegisterRoutes(app *fiber.App, db *sql.DB, entrySvc service.EntryService, cfg *config.AppConfig) {
	// Serve OpenAPI spec and a minimal Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Entry API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness: checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Bare liveness probe
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	// Liveness under the API prefix, plain text per the form contract
	api.Get("/health", LivenessProbe())
	api.Post("/submit-entry", SubmitEntry(entrySvc, !cfg.Production()))
	api.Get("/entries", ListEntries(entrySvc))
	api.Get("/entries/:id", GetEntry(entrySvc))
}
