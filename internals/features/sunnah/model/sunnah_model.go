package model

import (
	"time"

	"github.com/google/uuid"
)

// SunnahIbadahModel: daftar amalan sunnah yang direkomendasikan,
// dikurasi super-admin.
type SunnahIbadahModel struct {
	ID            uuid.UUID `gorm:"column:sunnah_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"column:sunnah_name;size:100;not null" json:"name"`
	Description   *string   `gorm:"column:sunnah_description" json:"description,omitempty"`
	Schedule      *string   `gorm:"column:sunnah_schedule;size:100" json:"schedule,omitempty"`
	CreatedBy     uuid.UUID `gorm:"column:sunnah_created_by;type:uuid;not null" json:"createdBy"`
	CreatedByName string    `gorm:"column:sunnah_created_by_name;size:100;not null" json:"createdByName"`
	CreatedAt     time.Time `gorm:"column:sunnah_created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:sunnah_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SunnahIbadahModel) TableName() string {
	return "sunnah_ibadah_configs"
}
