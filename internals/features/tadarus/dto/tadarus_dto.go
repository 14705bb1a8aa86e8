package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	tadarusModel "simbina_backend/internals/features/tadarus/model"
)

type CreateSessionRequest struct {
	Title          string      `json:"title" validate:"required,min=3,max=150"`
	Date           time.Time   `json:"date" validate:"required"`
	Location       *string     `json:"location,omitempty" validate:"omitempty,max=150"`
	SurahRange     *string     `json:"surahRange,omitempty" validate:"omitempty,max=100"`
	ParticipantIDs []uuid.UUID `json:"participantIds" validate:"required,min=1,dive,required"`
}

func (r *CreateSessionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Location != nil {
		v := strings.TrimSpace(*r.Location)
		if v == "" {
			r.Location = nil
		} else {
			r.Location = &v
		}
	}
	if r.SurahRange != nil {
		v := strings.TrimSpace(*r.SurahRange)
		if v == "" {
			r.SurahRange = nil
		} else {
			r.SurahRange = &v
		}
	}
}

// MarkPresenceRequest — set flag hadir peserta dalam sesi
type MarkPresenceRequest struct {
	EmployeeID uuid.UUID `json:"employeeId" validate:"required"`
	Present    bool      `json:"present"`
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

type CreateTadarusRequest struct {
	PreferredDate time.Time `json:"preferredDate" validate:"required"`
	Note          *string   `json:"note,omitempty"`
}

func (r *CreateTadarusRequest) ToModel(employeeID uuid.UUID) *tadarusModel.TadarusRequestModel {
	return &tadarusModel.TadarusRequestModel{
		EmployeeID:    employeeID,
		PreferredDate: r.PreferredDate,
		Note:          r.Note,
		Status:        tadarusModel.RequestRequested,
	}
}

type DecideTadarusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
