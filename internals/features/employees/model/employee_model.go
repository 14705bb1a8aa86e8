package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel merepresentasikan tabel employees di database.
// Password selalu berisi hash bcrypt, tidak pernah plaintext.
type EmployeeModel struct {
	ID         uuid.UUID `gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NIP        string    `gorm:"column:employee_nip;size:30;unique;not null" json:"nip"`
	FullName   string    `gorm:"column:employee_full_name;size:100;not null" json:"fullName"`
	Email      string    `gorm:"column:employee_email;size:255;unique;not null" json:"email"`
	Password   string    `gorm:"column:employee_password;not null" json:"-"`
	Role       string    `gorm:"column:employee_role;type:varchar(20);not null;default:'user'" json:"role"`
	Unit       *string   `gorm:"column:employee_unit;size:100" json:"unit,omitempty"`
	Profession *string   `gorm:"column:employee_profession;size:100" json:"profession,omitempty"`
	IsActive   bool      `gorm:"column:employee_is_active;not null;default:false" json:"isActive"`

	// FK supervisi: kepala unit yang membina pegawai ini
	KaUnitID *uuid.UUID `gorm:"column:employee_ka_unit_id;type:uuid" json:"kaUnitId,omitempty"`

	AvatarURL    *string `gorm:"column:employee_avatar_url;size:255" json:"avatarUrl,omitempty"`
	SignatureURL *string `gorm:"column:employee_signature_url;size:255" json:"signatureUrl,omitempty"`

	CreatedAt time.Time `gorm:"column:employee_created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
