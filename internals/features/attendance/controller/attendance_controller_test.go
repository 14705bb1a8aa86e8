package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	attDTO "simbina_backend/internals/features/attendance/dto"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("gorm.Open dry-run: %v", err)
	}
	return db
}

// Batch harus jadi SATU INSERT multi-row + ON CONFLICT DO UPDATE,
// dengan created_at tidak ikut ditimpa.
func TestUpsertBatchStatementShape(t *testing.T) {
	emp := uuid.New()
	now := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)

	req := attDTO.BatchUpsertRequest{
		EmployeeID: &emp,
		Records: []attDTO.BatchRecord{
			{EntityID: "subuh", Status: "hadir"},
			{EntityID: "dzuhur", Status: "izin"},
			{EntityID: "ashar", Status: "hadir"},
		},
	}
	rows, err := req.ToModels(now)
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}

	tx := upsertBatch(dryRunDB(t), rows)
	if tx.Error != nil {
		t.Fatalf("upsertBatch: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	sql = strings.ReplaceAll(sql, "`", "")
	sql = strings.ReplaceAll(sql, `"`, "")

	if n := strings.Count(sql, "INSERT INTO attendance_records"); n != 1 {
		t.Fatalf("INSERT count = %d, sql = %s", n, sql)
	}
	// satu row VALUES per record
	if n := strings.Count(sql, "),("); n != len(rows)-1 {
		t.Errorf("VALUES rows = %d, want %d; sql = %s", n+1, len(rows), sql)
	}
	if !strings.Contains(sql, "ON CONFLICT (attendance_employee_id,attendance_entity_id) DO UPDATE SET") {
		t.Errorf("conflict target salah: %s", sql)
	}
	for _, col := range []string{
		"attendance_status",
		"attendance_timestamp",
		"attendance_reason",
		"attendance_is_late_entry",
		"attendance_updated_at",
	} {
		if !strings.Contains(sql, col+"=excluded."+col) {
			t.Errorf("kolom %s tidak ditimpa: %s", col, sql)
		}
	}
	if strings.Contains(sql, "attendance_created_at=excluded") {
		t.Errorf("created_at tidak boleh ditimpa: %s", sql)
	}
}

// Submit ulang batch yang sama menghasilkan statement identik —
// ON CONFLICT-lah yang membuat submit kedua menimpa, bukan statement berbeda.
func TestUpsertBatchResubmitSameStatement(t *testing.T) {
	emp := uuid.New()
	now := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)

	req := attDTO.BatchUpsertRequest{
		EmployeeID: &emp,
		Records:    []attDTO.BatchRecord{{EntityID: "subuh", Status: "hadir"}},
	}
	rows, err := req.ToModels(now)
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}

	first := upsertBatch(dryRunDB(t), rows).Statement.SQL.String()
	second := upsertBatch(dryRunDB(t), rows).Statement.SQL.String()
	if first != second {
		t.Errorf("statement berubah antar submit:\n%s\n%s", first, second)
	}
}
