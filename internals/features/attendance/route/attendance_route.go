// internals/features/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "simbina_backend/internals/features/attendance/controller"
)

// AttendanceRoutes: presensi + laporan (butuh sesi)
func AttendanceRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := attController.NewAttendanceController(db)

	private.Post("/attendance/batch", ctrl.BatchUpsert)
	private.Get("/reports/prayer-attendance", ctrl.PrayerAttendanceReport)
}
