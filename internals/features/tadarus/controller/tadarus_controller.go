// internals/features/tadarus/controller/tadarus_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	empModel "simbina_backend/internals/features/employees/model"
	tadarusDTO "simbina_backend/internals/features/tadarus/dto"
	tadarusModel "simbina_backend/internals/features/tadarus/model"
	helper "simbina_backend/internals/helpers"
	authmw "simbina_backend/internals/middlewares/auth"
)

type TadarusController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTadarusController(db *gorm.DB) *TadarusController {
	return &TadarusController{DB: db, Validate: validator.New()}
}

/* =========================================================
   SESSIONS
   ========================================================= */

// CREATE SESSION
// POST /api/tadarus/sessions — kaunit ke atas.
// Daftar peserta di-snapshot (id+nama) ke kolom JSONB.
func (h *TadarusController) CreateSession(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tadarusDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ids := make([]string, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		ids = append(ids, id.String())
	}
	var emps []empModel.EmployeeModel
	if err := h.DB.Where("employee_id = ANY(?)", pq.Array(ids)).Find(&emps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil peserta")
	}
	if len(emps) != len(req.ParticipantIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ada peserta yang tidak terdaftar")
	}

	participants := make([]tadarusModel.Participant, 0, len(emps))
	for _, e := range emps {
		participants = append(participants, tadarusModel.Participant{
			EmployeeID: e.ID,
			Name:       e.FullName,
			Present:    false,
		})
	}

	m := tadarusModel.TadarusSessionModel{
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		SurahRange:   req.SurahRange,
		Status:       tadarusModel.SessionScheduled,
		Participants: datatypes.NewJSONSlice(participants),
		CreatedBy:    userID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi tadarus")
	}
	return helper.JsonCreated(c, "Sesi tadarus dibuat", m)
}

// LIST SESSIONS
// GET /api/tadarus/sessions?status=
func (h *TadarusController) ListSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&tadarusModel.TadarusSessionModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("tadarus_session_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	var rows []tadarusModel.TadarusSessionModel
	if err := q.Order("tadarus_session_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// MARK PRESENCE
// PUT /api/tadarus/sessions/:id/presence — toggle hadir peserta
func (h *TadarusController) MarkPresence(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req tadarusDTO.MarkPresenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m tadarusModel.TadarusSessionModel
	if err := h.DB.First(&m, "tadarus_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	found := false
	participants := []tadarusModel.Participant(m.Participants)
	for i := range participants {
		if participants[i].EmployeeID == req.EmployeeID {
			participants[i].Present = req.Present
			found = true
			break
		}
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Peserta tidak ada di sesi ini")
	}

	if err := h.DB.Model(&m).
		Update("tadarus_session_participants", datatypes.NewJSONSlice(participants)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi sesi")
	}

	m.Participants = datatypes.NewJSONSlice(participants)
	return helper.JsonUpdated(c, "Presensi sesi tersimpan", m)
}

// UPDATE STATUS
// PUT /api/tadarus/sessions/:id/status — kaunit ke atas
func (h *TadarusController) UpdateSessionStatus(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req tadarusDTO.UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := h.DB.Model(&tadarusModel.TadarusSessionModel{}).
		Where("tadarus_session_id = ?", sessionID).
		Update("tadarus_session_status", req.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status sesi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status sesi diperbarui", nil)
}

/* =========================================================
   REQUESTS (pengajuan slot)
   ========================================================= */

// CREATE REQUEST
// POST /api/tadarus/requests — pegawai mengajukan slot
func (h *TadarusController) CreateRequest(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tadarusDTO.CreateTadarusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengajukan sesi")
	}
	return helper.JsonCreated(c, "Pengajuan terkirim", m)
}

// LIST OWN REQUESTS
// GET /api/tadarus/requests — pengajuan milik sendiri
func (h *TadarusController) ListOwnRequests(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []tadarusModel.TadarusRequestModel
	if err := h.DB.
		Where("tadarus_request_employee_id = ?", userID).
		Order("tadarus_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// DECIDE
// PUT /api/tadarus/requests/:id/decide — kaunit ke atas, hanya dari requested
func (h *TadarusController) DecideRequest(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req tadarusDTO.DecideTadarusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now().UTC()
	res := h.DB.Model(&tadarusModel.TadarusRequestModel{}).
		Where("tadarus_request_id = ? AND tadarus_request_status = ?",
			requestID, tadarusModel.RequestRequested).
		Updates(map[string]any{
			"tadarus_request_status":     req.Status,
			"tadarus_request_decided_by": userID,
			"tadarus_request_decided_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memutuskan pengajuan")
	}
	if res.RowsAffected == 0 {
		// tidak ada, atau sudah diputuskan sebelumnya
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan atau sudah diputuskan")
	}
	return helper.JsonUpdated(c, "Pengajuan "+req.Status, nil)
}
