package dto

import (
	"strings"

	"github.com/google/uuid"

	sunnahModel "simbina_backend/internals/features/sunnah/model"
)

type CreateSunnahRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description *string `json:"description,omitempty"`
	Schedule    *string `json:"schedule,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateSunnahRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		if v == "" {
			r.Description = nil
		} else {
			r.Description = &v
		}
	}
	if r.Schedule != nil {
		v := strings.TrimSpace(*r.Schedule)
		if v == "" {
			r.Schedule = nil
		} else {
			r.Schedule = &v
		}
	}
}

func (r *CreateSunnahRequest) ToModel(createdBy uuid.UUID, createdByName string) *sunnahModel.SunnahIbadahModel {
	return &sunnahModel.SunnahIbadahModel{
		Name:          r.Name,
		Description:   r.Description,
		Schedule:      r.Schedule,
		CreatedBy:     createdBy,
		CreatedByName: createdByName,
	}
}

// UpdateSunnahRequest — partial update (pointer biar bisa bedakan omit vs null)
type UpdateSunnahRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty"`
	Schedule    *string `json:"schedule,omitempty" validate:"omitempty,max=100"`
}
