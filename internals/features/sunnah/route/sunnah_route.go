// internals/features/sunnah/route/sunnah_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simbina_backend/internals/constants"
	sunnahController "simbina_backend/internals/features/sunnah/controller"
	authmw "simbina_backend/internals/middlewares/auth"
)

// SunnahPublicRoutes: daftar sunnah bisa dibaca tanpa login
func SunnahPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := sunnahController.NewSunnahController(db)
	public.Get("/admin/sunnah-ibadah", ctrl.List)
}

// SunnahAdminRoutes: mutasi khusus super-admin
func SunnahAdminRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := sunnahController.NewSunnahController(db)

	admin := private.Group("/admin/sunnah-ibadah",
		authmw.RequireCapability(constants.CapSunnahWrite))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
