package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status sesi & request disimpan sebagai string polos, transisi dijaga controller.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"

	RequestRequested = "requested"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
)

// Participant: snapshot peserta di dalam sesi (disimpan JSONB).
type Participant struct {
	EmployeeID uuid.UUID `json:"employeeId"`
	Name       string    `json:"name"`
	Present    bool      `json:"present"`
}

// TadarusSessionModel: sesi tadarus kelompok terjadwal.
type TadarusSessionModel struct {
	ID           uuid.UUID                        `gorm:"column:tadarus_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string                           `gorm:"column:tadarus_session_title;size:150;not null" json:"title"`
	Date         time.Time                        `gorm:"column:tadarus_session_date;not null" json:"date"`
	Location     *string                          `gorm:"column:tadarus_session_location;size:150" json:"location,omitempty"`
	SurahRange   *string                          `gorm:"column:tadarus_session_surah_range;size:100" json:"surahRange,omitempty"`
	Status       string                           `gorm:"column:tadarus_session_status;size:20;not null;default:'scheduled'" json:"status"`
	Participants datatypes.JSONSlice[Participant] `gorm:"column:tadarus_session_participants;type:jsonb" json:"participants"`
	CreatedBy    uuid.UUID                        `gorm:"column:tadarus_session_created_by;type:uuid;not null" json:"createdBy"`
	CreatedAt    time.Time                        `gorm:"column:tadarus_session_created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                        `gorm:"column:tadarus_session_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (TadarusSessionModel) TableName() string {
	return "tadarus_sessions"
}

// TadarusRequestModel: pengajuan slot sesi oleh pegawai, menunggu approval.
type TadarusRequestModel struct {
	ID            uuid.UUID  `gorm:"column:tadarus_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID    uuid.UUID  `gorm:"column:tadarus_request_employee_id;type:uuid;not null" json:"employeeId"`
	PreferredDate time.Time  `gorm:"column:tadarus_request_preferred_date;not null" json:"preferredDate"`
	Note          *string    `gorm:"column:tadarus_request_note" json:"note,omitempty"`
	Status        string     `gorm:"column:tadarus_request_status;size:20;not null;default:'requested'" json:"status"`
	DecidedBy     *uuid.UUID `gorm:"column:tadarus_request_decided_by;type:uuid" json:"decidedBy,omitempty"`
	DecidedAt     *time.Time `gorm:"column:tadarus_request_decided_at" json:"decidedAt,omitempty"`
	CreatedAt     time.Time  `gorm:"column:tadarus_request_created_at;autoCreateTime" json:"createdAt"`
}

func (TadarusRequestModel) TableName() string {
	return "tadarus_requests"
}
