// internals/features/supervision/route/supervision_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simbina_backend/internals/constants"
	supervisionController "simbina_backend/internals/features/supervision/controller"
	authmw "simbina_backend/internals/middlewares/auth"
)

// SupervisionRoutes: kelola tim binaan (kaunit ke atas)
func SupervisionRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := supervisionController.NewSupervisionController(db)

	private.Post("/supervision/manage-team",
		authmw.RequireCapability(constants.CapTeamManage), ctrl.ManageTeam)
}
