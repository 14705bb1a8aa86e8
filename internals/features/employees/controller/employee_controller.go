// internals/features/employees/controller/employee_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	empDTO "simbina_backend/internals/features/employees/dto"
	empModel "simbina_backend/internals/features/employees/model"
	helper "simbina_backend/internals/helpers"
	authmw "simbina_backend/internals/middlewares/auth"
)

type EmployeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validate: validator.New()}
}

// BULK FETCH
// POST /api/employees/bulk — ambil banyak pegawai by ID, password di-strip
func (h *EmployeeController) BulkFetch(c *fiber.Ctx) error {
	var req empDTO.BulkFetchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ids := make([]string, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		ids = append(ids, id.String())
	}

	var rows []empModel.EmployeeModel
	if err := h.DB.
		Where("employee_id = ANY(?)", pq.Array(ids)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pegawai")
	}

	return helper.JsonOK(c, "ok", empDTO.FromEmployeeModels(rows))
}

// UPDATE PROFILE
// PUT /api/employees/profile — pegawai mengubah profilnya sendiri
func (h *EmployeeController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req empDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["employee_full_name"] = *req.FullName
	}
	if req.Unit != nil {
		updates["employee_unit"] = *req.Unit
	}
	if req.Profession != nil {
		updates["employee_profession"] = *req.Profession
	}
	if req.AvatarURL != nil {
		updates["employee_avatar_url"] = *req.AvatarURL
	}
	if req.SignatureURL != nil {
		updates["employee_signature_url"] = *req.SignatureURL
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := h.DB.Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	var emp empModel.EmployeeModel
	if err := h.DB.First(&emp, "employee_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", empDTO.FromEmployeeModel(emp))
}
