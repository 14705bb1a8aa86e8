package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestToModelsAppliesDefaults(t *testing.T) {
	reqEmp := uuid.New()
	recEmp := uuid.New()
	ts := time.Date(2025, 3, 10, 4, 45, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
	late := true

	req := BatchUpsertRequest{
		EmployeeID: &reqEmp,
		Records: []BatchRecord{
			// record lengkap
			{EmployeeID: &recEmp, EntityID: "subuh", Status: "hadir", Timestamp: &ts, IsLateEntry: &late},
			// record minimal: fallback ke employeeId request + default
			{EntityID: "dzuhur", Status: "izin"},
		},
	}

	rows, err := req.ToModels(now)
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d", len(rows))
	}

	if rows[0].EmployeeID != recEmp || !rows[0].Timestamp.Equal(ts) || !rows[0].IsLateEntry {
		t.Errorf("record lengkap salah: %+v", rows[0])
	}
	if rows[1].EmployeeID != reqEmp {
		t.Errorf("fallback employeeId tidak jalan: %+v", rows[1])
	}
	if !rows[1].Timestamp.Equal(now) {
		t.Errorf("default timestamp salah: %v", rows[1].Timestamp)
	}
	if rows[1].Reason != nil {
		t.Errorf("default reason harus nil, dapat %v", rows[1].Reason)
	}
	if rows[1].IsLateEntry {
		t.Errorf("default isLateEntry harus false")
	}
}

// Duplikat (employeeId, entityId) dalam satu batch dirapikan keep-last:
// Postgres menolak ON CONFLICT DO UPDATE yang menyentuh row sama dua kali
// dalam satu statement.
func TestToModelsDedupesKeepLast(t *testing.T) {
	emp := uuid.New()
	other := uuid.New()
	now := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)

	req := BatchUpsertRequest{
		EmployeeID: &emp,
		Records: []BatchRecord{
			{EntityID: "subuh", Status: "hadir"},
			{EmployeeID: &other, EntityID: "subuh", Status: "hadir"}, // pegawai lain, bukan duplikat
			{EntityID: "subuh", Status: "izin"}, // duplikat → menang
		},
	}

	rows, err := req.ToModels(now)
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (duplikat harus hilang)", len(rows))
	}
	if rows[0].EmployeeID != emp || rows[0].Status != "izin" {
		t.Errorf("record terakhir harus menang: %+v", rows[0])
	}
	if rows[1].EmployeeID != other || rows[1].Status != "hadir" {
		t.Errorf("record pegawai lain berubah: %+v", rows[1])
	}
}

func TestToModelsMissingEmployeeID(t *testing.T) {
	req := BatchUpsertRequest{
		Records: []BatchRecord{{EntityID: "subuh", Status: "hadir"}},
	}
	if _, err := req.ToModels(time.Now()); !errors.Is(err, ErrMissingEmployeeID) {
		t.Fatalf("err = %v, want ErrMissingEmployeeID", err)
	}
}
