// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attRoute "simbina_backend/internals/features/attendance/route"
	empRoute "simbina_backend/internals/features/employees/route"
	settingsRoute "simbina_backend/internals/features/settings/route"
	storageRoute "simbina_backend/internals/features/storage/route"
	sunnahRoute "simbina_backend/internals/features/sunnah/route"
	supervisionRoute "simbina_backend/internals/features/supervision/route"
	tadarusRoute "simbina_backend/internals/features/tadarus/route"
	authmw "simbina_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	empRoute.AuthRoutes(public, db)
	sunnahRoute.SunnahPublicRoutes(public, db)
	storageRoute.StorageRoutes(public)

	// file upload juga dilayani statis di /uploads (cache-friendly)
	app.Static("/uploads", "public/uploads", fiber.Static{
		MaxAge: 31536000,
	})

	// ===================== PRIVATE (sesi) =====================
	log.Println("[INFO] Setting up PRIVATE group (AuthMiddleware)...")
	private := app.Group("/api", authmw.AuthMiddleware(db))

	empRoute.AuthSessionRoutes(private, db)
	empRoute.EmployeeRoutes(private, db)
	empRoute.AdminEmployeeRoutes(private, db)
	attRoute.AttendanceRoutes(private, db)
	settingsRoute.SettingsRoutes(private, db)
	sunnahRoute.SunnahAdminRoutes(private, db)
	tadarusRoute.TadarusRoutes(private, db)
	supervisionRoute.SupervisionRoutes(private, db)
}
