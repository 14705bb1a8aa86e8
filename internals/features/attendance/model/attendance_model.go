package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity ID slot ibadah/kegiatan yang dikenal UI
const (
	EntitySubuh   = "subuh"
	EntityDzuhur  = "dzuhur"
	EntityAshar   = "ashar"
	EntityMaghrib = "maghrib"
	EntityIsya    = "isya"
	EntityJumat   = "jumat"
)

// AttendanceRecordModel: satu status presensi per (pegawai, slot).
// Kunci unik TANPA komponen tanggal — upsert menimpa record slot yang sama.
type AttendanceRecordModel struct {
	ID          uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID  uuid.UUID `gorm:"column:attendance_employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_entity" json:"employeeId"`
	EntityID    string    `gorm:"column:attendance_entity_id;size:50;not null;uniqueIndex:uq_attendance_employee_entity" json:"entityId"`
	Status      string    `gorm:"column:attendance_status;size:30;not null" json:"status"`
	Timestamp   time.Time `gorm:"column:attendance_timestamp;not null" json:"timestamp"`
	Reason      *string   `gorm:"column:attendance_reason" json:"reason,omitempty"`
	IsLateEntry bool      `gorm:"column:attendance_is_late_entry;not null;default:false" json:"isLateEntry"`
	CreatedAt   time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
