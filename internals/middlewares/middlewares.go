package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"simbina_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar yang berlaku global.
// Rate limiter login/register dipasang per-route di internals/route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
