package dto

import (
	"time"

	"github.com/google/uuid"

	attModel "simbina_backend/internals/features/attendance/model"
)

// BatchRecord — satu record dalam batch. EmployeeID boleh kosong,
// fallback ke EmployeeID level request.
type BatchRecord struct {
	EmployeeID  *uuid.UUID `json:"employeeId,omitempty"`
	EntityID    string     `json:"entityId" validate:"required,max=50"`
	Status      string     `json:"status" validate:"required,max=30"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	IsLateEntry *bool      `json:"isLateEntry,omitempty"`
}

type BatchUpsertRequest struct {
	EmployeeID *uuid.UUID    `json:"employeeId,omitempty"`
	Records    []BatchRecord `json:"records" validate:"required,min=1,dive"`
}

// ToModels menerapkan default per-record:
// - employeeId record kosong → pakai employeeId level request
// - timestamp kosong → now
// - reason default null, isLateEntry default false
// Duplikat (employeeId, entityId) dalam satu batch: record terakhir menang.
// Postgres menolak ON CONFLICT DO UPDATE yang menyentuh row yang sama dua
// kali dalam satu statement, jadi dedup harus terjadi sebelum insert.
func (r *BatchUpsertRequest) ToModels(now time.Time) ([]attModel.AttendanceRecordModel, error) {
	type key struct {
		emp    uuid.UUID
		entity string
	}
	out := make([]attModel.AttendanceRecordModel, 0, len(r.Records))
	seen := make(map[key]int, len(r.Records))

	for _, rec := range r.Records {
		empID := rec.EmployeeID
		if empID == nil {
			empID = r.EmployeeID
		}
		if empID == nil {
			return nil, ErrMissingEmployeeID
		}

		ts := now
		if rec.Timestamp != nil {
			ts = *rec.Timestamp
		}
		late := false
		if rec.IsLateEntry != nil {
			late = *rec.IsLateEntry
		}

		row := attModel.AttendanceRecordModel{
			EmployeeID:  *empID,
			EntityID:    rec.EntityID,
			Status:      rec.Status,
			Timestamp:   ts,
			Reason:      rec.Reason,
			IsLateEntry: late,
		}

		k := key{emp: *empID, entity: rec.EntityID}
		if idx, ok := seen[k]; ok {
			out[idx] = row
			continue
		}
		seen[k] = len(out)
		out = append(out, row)
	}
	return out, nil
}

type missingEmployeeIDError struct{}

func (missingEmployeeIDError) Error() string {
	return "employeeId wajib diisi di record atau di level request"
}

var ErrMissingEmployeeID error = missingEmployeeIDError{}
