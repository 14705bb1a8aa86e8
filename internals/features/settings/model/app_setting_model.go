package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AppSettingModel: key-value konfigurasi aplikasi, last-write-wins.
type AppSettingModel struct {
	Key       string         `gorm:"column:setting_key;size:100;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"column:setting_value;type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"column:setting_updated_at;autoUpdateTime" json:"updatedAt"`
	UpdatedBy *uuid.UUID     `gorm:"column:setting_updated_by;type:uuid" json:"updatedBy,omitempty"`
}

func (AppSettingModel) TableName() string {
	return "app_settings"
}
