package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStructureModel: tabel referensi struktur jabatan (read-mostly).
type JobStructureModel struct {
	ID        uuid.UUID  `gorm:"column:job_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"column:job_structure_name;size:100;not null" json:"name"`
	Level     int        `gorm:"column:job_structure_level;not null;default:0" json:"level"`
	ParentID  *uuid.UUID `gorm:"column:job_structure_parent_id;type:uuid" json:"parentId,omitempty"`
	CreatedAt time.Time  `gorm:"column:job_structure_created_at;autoCreateTime" json:"createdAt"`
}

func (JobStructureModel) TableName() string {
	return "job_structures"
}
