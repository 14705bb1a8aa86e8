// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attDTO "simbina_backend/internals/features/attendance/dto"
	attModel "simbina_backend/internals/features/attendance/model"
	helper "simbina_backend/internals/helpers"
	"simbina_backend/internals/helpers/convertcase"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// BATCH UPSERT
// POST /api/attendance/batch
// Satu INSERT multi-row + ON CONFLICT (employee_id, entity_id) DO UPDATE,
// bukan N round-trip. Submit ulang record yang sama = menimpa field-nya.
func (h *AttendanceController) BatchUpsert(c *fiber.Ctx) error {
	var req attDTO.BatchUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rows, err := req.ToModels(time.Now().UTC())
	if err != nil {
		if errors.Is(err, attDTO.ErrMissingEmployeeID) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := upsertBatch(h.DB, rows).Error; err != nil {
		log.Println("[ERROR] attendance batch upsert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}

	return helper.JsonOK(c, "Presensi tersimpan", rows)
}

// upsertBatch menulis seluruh batch dalam SATU statement multi-row:
// INSERT .. ON CONFLICT (employee, entity) DO UPDATE. Kolom created_at
// sengaja tidak ikut ditimpa.
func upsertBatch(db *gorm.DB, rows []attModel.AttendanceRecordModel) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_employee_id"},
			{Name: "attendance_entity_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_timestamp",
			"attendance_reason",
			"attendance_is_late_entry",
			"attendance_updated_at",
		}),
	}).Create(&rows)
}

// REPORT
// GET /api/reports/prayer-attendance?date=YYYY-MM-DD&unit=
// Join pegawai × presensi; row mentah snake_case dikonversi camelCase
// di boundary API.
func (h *AttendanceController) PrayerAttendanceReport(c *fiber.Ctx) error {
	query := `
		SELECT
			e.employee_id,
			e.employee_nip,
			e.employee_full_name,
			e.employee_unit,
			a.attendance_entity_id,
			a.attendance_status,
			a.attendance_timestamp,
			a.attendance_reason,
			a.attendance_is_late_entry
		FROM employees e
		JOIN attendance_records a ON a.attendance_employee_id = e.employee_id
		WHERE e.employee_is_active = TRUE`
	args := []any{}

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		query += ` AND a.attendance_timestamp::date = ?`
		args = append(args, date)
	}
	if unit := c.Query("unit"); unit != "" {
		query += ` AND e.employee_unit = ?`
		args = append(args, unit)
	}
	query += ` ORDER BY e.employee_full_name ASC, a.attendance_entity_id ASC`

	var rows []map[string]any
	if err := h.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		log.Println("[ERROR] prayer attendance report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, convertcase.ToCamelCase(row))
	}
	return helper.JsonOK(c, "ok", out)
}
