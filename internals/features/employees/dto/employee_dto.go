package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	empModel "simbina_backend/internals/features/employees/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest — pendaftaran mandiri, akun nonaktif sampai disetujui admin
type RegisterRequest struct {
	NIP        string  `json:"nip" validate:"required,min=3,max=30"`
	FullName   string  `json:"name" validate:"required,min=3,max=100"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" validate:"required,min=6"`
	Unit       *string `json:"unit,omitempty" validate:"omitempty,max=100"`
	Profession *string `json:"profession,omitempty" validate:"omitempty,max=100"`
}

// Normalize — trim & normalisasi dasar
func (r *RegisterRequest) Normalize() {
	r.NIP = strings.TrimSpace(r.NIP)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Unit != nil {
		v := strings.TrimSpace(*r.Unit)
		if v == "" {
			r.Unit = nil
		} else {
			r.Unit = &v
		}
	}
	if r.Profession != nil {
		v := strings.TrimSpace(*r.Profession)
		if v == "" {
			r.Profession = nil
		} else {
			r.Profession = &v
		}
	}
}

// ToModel — konversi ke model (hash password di controller!)
func (r *RegisterRequest) ToModel() *empModel.EmployeeModel {
	return &empModel.EmployeeModel{
		NIP:        r.NIP,
		FullName:   r.FullName,
		Email:      r.Email,
		Password:   r.Password,
		Role:       "user",
		Unit:       r.Unit,
		Profession: r.Profession,
		IsActive:   false, // aktivasi menunggu approval admin
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// UpdateProfileRequest — partial update profil sendiri
type UpdateProfileRequest struct {
	FullName     *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Unit         *string `json:"unit,omitempty" validate:"omitempty,max=100"`
	Profession   *string `json:"profession,omitempty" validate:"omitempty,max=100"`
	AvatarURL    *string `json:"avatarUrl,omitempty" validate:"omitempty,max=255"`
	SignatureURL *string `json:"signatureUrl,omitempty" validate:"omitempty,max=255"`
}

// ResetPasswordRequest — oleh admin-tier
type ResetPasswordRequest struct {
	EmployeeID  uuid.UUID `json:"employeeId" validate:"required"`
	NewPassword string    `json:"newPassword" validate:"required,min=6"`
}

// SetActiveRequest — approve / nonaktifkan pegawai
type SetActiveRequest struct {
	EmployeeID uuid.UUID `json:"employeeId" validate:"required"`
	IsActive   bool      `json:"isActive"`
}

// BulkFetchRequest — ambil banyak pegawai sekaligus by ID
type BulkFetchRequest struct {
	EmployeeIDs []uuid.UUID `json:"employeeIds" validate:"required,min=1,dive,required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// EmployeeResponse — profil tanpa password
type EmployeeResponse struct {
	ID           uuid.UUID  `json:"id"`
	NIP          string     `json:"nip"`
	FullName     string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Unit         *string    `json:"unit,omitempty"`
	Profession   *string    `json:"profession,omitempty"`
	IsActive     bool       `json:"isActive"`
	KaUnitID     *uuid.UUID `json:"kaUnitId,omitempty"`
	AvatarURL    *string    `json:"avatarUrl,omitempty"`
	SignatureURL *string    `json:"signatureUrl,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromEmployeeModel(m empModel.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:           m.ID,
		NIP:          m.NIP,
		FullName:     m.FullName,
		Email:        m.Email,
		Role:         m.Role,
		Unit:         m.Unit,
		Profession:   m.Profession,
		IsActive:     m.IsActive,
		KaUnitID:     m.KaUnitID,
		AvatarURL:    m.AvatarURL,
		SignatureURL: m.SignatureURL,
		CreatedAt:    m.CreatedAt,
	}
}

func FromEmployeeModels(ms []empModel.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEmployeeModel(m))
	}
	return out
}
