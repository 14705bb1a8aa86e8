// internals/features/sunnah/controller/sunnah_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sunnahDTO "simbina_backend/internals/features/sunnah/dto"
	sunnahModel "simbina_backend/internals/features/sunnah/model"
	helper "simbina_backend/internals/helpers"
	authmw "simbina_backend/internals/middlewares/auth"
)

type SunnahController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSunnahController(db *gorm.DB) *SunnahController {
	return &SunnahController{DB: db, Validate: validator.New()}
}

// LIST
// GET /api/admin/sunnah-ibadah — publik, dipakai dashboard tanpa login
func (h *SunnahController) List(c *fiber.Ctx) error {
	var rows []sunnahModel.SunnahIbadahModel
	if err := h.DB.Order("sunnah_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sunnah")
	}
	return helper.JsonOK(c, "ok", rows)
}

// CREATE
// POST /api/admin/sunnah-ibadah — super-admin
func (h *SunnahController) Create(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userName, _ := c.Locals(authmw.LocUserName).(string)

	var req sunnahDTO.CreateSunnahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(userID, userName)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konfigurasi sunnah")
	}
	return helper.JsonCreated(c, "Konfigurasi sunnah dibuat", m)
}

// UPDATE
// PUT /api/admin/sunnah-ibadah/:id — super-admin
func (h *SunnahController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sunnahDTO.UpdateSunnahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["sunnah_name"] = *req.Name
	}
	if req.Description != nil {
		updates["sunnah_description"] = *req.Description
	}
	if req.Schedule != nil {
		updates["sunnah_schedule"] = *req.Schedule
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&sunnahModel.SunnahIbadahModel{}).
		Where("sunnah_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update konfigurasi sunnah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi sunnah tidak ditemukan")
	}

	var m sunnahModel.SunnahIbadahModel
	if err := h.DB.First(&m, "sunnah_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi sunnah")
	}
	return helper.JsonUpdated(c, "Konfigurasi sunnah diperbarui", m)
}

// DELETE
// DELETE /api/admin/sunnah-ibadah/:id — super-admin
func (h *SunnahController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&sunnahModel.SunnahIbadahModel{}, "sunnah_id = ?", id)
	if res.Error != nil {
		if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konfigurasi sunnah")
		}
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konfigurasi sunnah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Konfigurasi sunnah dihapus", nil)
}
