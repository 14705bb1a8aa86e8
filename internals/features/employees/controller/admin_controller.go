// internals/features/employees/controller/admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	empDTO "simbina_backend/internals/features/employees/dto"
	empModel "simbina_backend/internals/features/employees/model"
	helper "simbina_backend/internals/helpers"
)

// AdminController: aksi admin-tier atas pegawai (route-group sudah
// dipagari RequireCapability, controller tinggal eksekusi).
type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

// RESET PASSWORD
// POST /api/admin/employees/reset-password
func (h *AdminController) ResetPassword(c *fiber.Ctx) error {
	var req empDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	res := h.DB.Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", req.EmployeeID).
		Update("employee_password", string(hashed))
	if res.Error != nil {
		log.Println("[ERROR] reset password:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset password")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Password berhasil direset", nil)
}

// SET ACTIVE
// POST /api/admin/employees/set-active — approve registrasi / nonaktifkan akun
func (h *AdminController) SetActive(c *fiber.Ctx) error {
	var req empDTO.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := h.DB.Model(&empModel.EmployeeModel{}).
		Where("employee_id = ?", req.EmployeeID).
		Update("employee_is_active", req.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status aktivasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}

	msg := "Pegawai dinonaktifkan"
	if req.IsActive {
		msg = "Pegawai diaktifkan"
	}
	return helper.JsonUpdated(c, msg, nil)
}

// LIST EMPLOYEES
// GET /api/admin/employees?page=&per_page=&q=
func (h *AdminController) ListEmployees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&empModel.EmployeeModel{})
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("employee_full_name ILIKE ? OR employee_nip ILIKE ? OR employee_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pegawai")
	}

	var rows []empModel.EmployeeModel
	if err := q.Order("employee_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pegawai")
	}

	return helper.JsonList(c, "ok", empDTO.FromEmployeeModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// JOB STRUCTURE
// GET /api/admin/job-structure — tabel referensi struktur jabatan
func (h *AdminController) ListJobStructure(c *fiber.Ctx) error {
	var rows []empModel.JobStructureModel
	if err := h.DB.Order("job_structure_level ASC, job_structure_name ASC").
		Find(&rows).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil struktur jabatan")
		}
	}
	return helper.JsonOK(c, "ok", rows)
}
