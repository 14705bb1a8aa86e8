// internals/features/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simbina_backend/internals/constants"
	settingsController "simbina_backend/internals/features/settings/controller"
	authmw "simbina_backend/internals/middlewares/auth"
)

// SettingsRoutes: GET butuh sesi, POST khusus super-admin
func SettingsRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	private.Get("/settings", ctrl.List)
	private.Post("/settings",
		authmw.RequireCapability(constants.CapSettingsWrite), ctrl.Upsert)
}
