// internals/features/supervision/controller/supervision_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "simbina_backend/internals/helpers"
)

// Mapping role pembina → kolom FK di employees. HANYA dari allow-list ini,
// nama kolom tidak pernah diturunkan dari input request.
var supervisorColumns = map[string]string{
	"kaunit": "employee_ka_unit_id",
}

type SupervisionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSupervisionController(db *gorm.DB) *SupervisionController {
	return &SupervisionController{DB: db, Validate: validator.New()}
}

type manageTeamRequest struct {
	Role         string      `json:"role" validate:"required"`
	SupervisorID uuid.UUID   `json:"supervisorId" validate:"required"`
	EmployeeIDs  []uuid.UUID `json:"employeeIds" validate:"required,min=1,dive,required"`
	Action       string      `json:"action" validate:"required,oneof=add remove"`
}

// MANAGE TEAM
// POST /api/supervision/manage-team
// add: set FK pembina untuk semua ID; remove: set NULL.
// Satu UPDATE batched — atomik di level statement.
func (h *SupervisionController) ManageTeam(c *fiber.Ctx) error {
	var req manageTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	column, ok := supervisorColumns[req.Role]
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role pembina tidak dikenal")
	}

	var value any
	if req.Action == "add" {
		value = req.SupervisorID
	} else {
		value = nil
	}

	ids := make([]string, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		ids = append(ids, id.String())
	}

	res := h.DB.Table("employees").
		Where("employee_id = ANY(?)", pq.Array(ids)).
		Update(column, value)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah tim binaan")
	}

	return helper.JsonUpdated(c, "Tim binaan diperbarui", fiber.Map{
		"updated": res.RowsAffected,
	})
}
