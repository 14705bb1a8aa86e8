// internals/features/employees/route/employee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simbina_backend/internals/constants"
	empController "simbina_backend/internals/features/employees/controller"
	"simbina_backend/internals/middlewares"
	authmw "simbina_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik (register/login/google/logout/verify)
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := empController.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/logout", ctrl.Logout)
	auth.Get("/verify", ctrl.Verify)
}

// AuthSessionRoutes: endpoint sesi (me/refresh)
func AuthSessionRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := empController.NewAuthController(db)

	auth := private.Group("/auth")
	auth.Get("/me", ctrl.Me)
	auth.Post("/refresh", ctrl.Refresh)
}

// EmployeeRoutes: endpoint pegawai ber-sesi
func EmployeeRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := empController.NewEmployeeController(db)

	emp := private.Group("/employees")
	emp.Post("/bulk", ctrl.BulkFetch)
	emp.Put("/profile", ctrl.UpdateProfile)
}

// AdminEmployeeRoutes: aksi admin-tier, dipagari capability
func AdminEmployeeRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := empController.NewAdminController(db)

	admin := private.Group("/admin")
	admin.Post("/employees/reset-password",
		authmw.RequireCapability(constants.CapEmployeeResetPassword), ctrl.ResetPassword)
	admin.Post("/employees/set-active",
		authmw.RequireCapability(constants.CapEmployeeActivate), ctrl.SetActive)
	admin.Get("/employees",
		authmw.RequireCapability(constants.CapEmployeeActivate), ctrl.ListEmployees)
	admin.Get("/job-structure",
		authmw.RequireCapability(constants.CapJobStructureRead), ctrl.ListJobStructure)
}
