// internals/features/tadarus/controller/quran_level_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tadarusModel "simbina_backend/internals/features/tadarus/model"
	helper "simbina_backend/internals/helpers"
)

type QuranLevelController struct {
	DB *gorm.DB
}

func NewQuranLevelController(db *gorm.DB) *QuranLevelController {
	return &QuranLevelController{DB: db}
}

// GET /api/quran/levels — tabel referensi jenjang bacaan
func (h *QuranLevelController) List(c *fiber.Ctx) error {
	var rows []tadarusModel.QuranLevelModel
	if err := h.DB.Order("quran_level_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jenjang bacaan")
	}
	return helper.JsonOK(c, "ok", rows)
}
