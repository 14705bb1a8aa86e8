// internals/features/tadarus/route/tadarus_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simbina_backend/internals/constants"
	tadarusController "simbina_backend/internals/features/tadarus/controller"
	authmw "simbina_backend/internals/middlewares/auth"
)

// TadarusRoutes: sesi & pengajuan tadarus (butuh sesi)
func TadarusRoutes(private fiber.Router, db *gorm.DB) {
	levels := tadarusController.NewQuranLevelController(db)
	ctrl := tadarusController.NewTadarusController(db)

	private.Get("/quran/levels", levels.List)

	tadarus := private.Group("/tadarus")
	tadarus.Get("/sessions", ctrl.ListSessions)
	tadarus.Post("/sessions",
		authmw.RequireCapability(constants.CapTadarusApprove), ctrl.CreateSession)
	tadarus.Put("/sessions/:id/presence", ctrl.MarkPresence)
	tadarus.Put("/sessions/:id/status",
		authmw.RequireCapability(constants.CapTadarusApprove), ctrl.UpdateSessionStatus)

	tadarus.Post("/requests", ctrl.CreateRequest)
	tadarus.Get("/requests", ctrl.ListOwnRequests)
	tadarus.Put("/requests/:id/decide",
		authmw.RequireCapability(constants.CapTadarusApprove), ctrl.DecideRequest)
}
