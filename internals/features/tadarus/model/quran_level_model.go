package model

import (
	"github.com/google/uuid"
)

// QuranLevelModel: tabel referensi jenjang bacaan (read-mostly).
type QuranLevelModel struct {
	ID          uuid.UUID `gorm:"column:quran_level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"column:quran_level_name;size:100;not null" json:"name"`
	Order       int       `gorm:"column:quran_level_order;not null;default:0" json:"order"`
	Description *string   `gorm:"column:quran_level_description" json:"description,omitempty"`
}

func (QuranLevelModel) TableName() string {
	return "quran_levels"
}
