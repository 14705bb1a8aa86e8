// internals/features/settings/controller/settings_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingModel "simbina_backend/internals/features/settings/model"
	helper "simbina_backend/internals/helpers"
	authmw "simbina_backend/internals/middlewares/auth"
)

type SettingsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db, Validate: validator.New()}
}

type upsertSettingRequest struct {
	Key   string         `json:"key" validate:"required,max=100"`
	Value datatypes.JSON `json:"value" validate:"required"`
}

// LIST
// GET /api/settings — semua setting (butuh sesi)
func (h *SettingsController) List(c *fiber.Ctx) error {
	var rows []settingModel.AppSettingModel
	q := h.DB.Order("setting_key ASC")
	if prefix := strings.TrimSpace(c.Query("prefix")); prefix != "" {
		q = q.Where("setting_key LIKE ?", prefix+"%")
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.JsonOK(c, "ok", rows)
}

// UPSERT
// POST /api/settings — super-admin only; konflik key = timpa (last write wins)
func (h *SettingsController) Upsert(c *fiber.Ctx) error {
	var req upsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Key = strings.TrimSpace(req.Key)
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	row := settingModel.AppSettingModel{
		Key:       req.Key,
		Value:     req.Value,
		UpdatedBy: &userID,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"setting_value",
			"setting_updated_at",
			"setting_updated_by",
		}),
	}).Create(&row).Error; err != nil {
		log.Println("[ERROR] upsert setting:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setting")
	}

	return helper.JsonOK(c, "Setting tersimpan", row)
}
