package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	empModel "simbina_backend/internals/features/employees/model"
)

var validate = validator.New()

func TestRegisterRequestPasswordMinimal(t *testing.T) {
	req := RegisterRequest{
		NIP:      "198701012010",
		FullName: "Ahmad Fauzi",
		Email:    "ahmad@contoh.go.id",
		Password: "abc12", // 5 karakter, minimal 6
	}
	req.Normalize()
	if err := validate.Struct(req); err == nil {
		t.Fatal("password < 6 karakter harus gagal validasi")
	}

	req.Password = "abc123"
	if err := validate.Struct(req); err != nil {
		t.Fatalf("password 6 karakter harus lolos: %v", err)
	}
}

func TestRegisterNormalizeAndDefaults(t *testing.T) {
	unit := "  Unit Keuangan  "
	kosong := "   "
	req := RegisterRequest{
		NIP:        " 123456 ",
		FullName:   " Siti ",
		Email:      " Siti@Contoh.GO.ID ",
		Password:   "rahasia1",
		Unit:       &unit,
		Profession: &kosong,
	}
	req.Normalize()

	if req.Email != "siti@contoh.go.id" {
		t.Errorf("email tidak dinormalisasi: %q", req.Email)
	}
	if req.Unit == nil || *req.Unit != "Unit Keuangan" {
		t.Errorf("unit tidak di-trim: %v", req.Unit)
	}
	if req.Profession != nil {
		t.Errorf("profession kosong harus jadi nil")
	}

	m := req.ToModel()
	if m.IsActive {
		t.Error("akun baru harus nonaktif (menunggu approval admin)")
	}
	if m.Role != "user" {
		t.Errorf("role default = %q, want user", m.Role)
	}
}

func TestEmployeeResponseStripsPassword(t *testing.T) {
	m := empModel.EmployeeModel{
		NIP:      "123",
		FullName: "Budi",
		Email:    "budi@contoh.go.id",
		Password: "$2a$10$hash-rahasia",
		Role:     "user",
	}
	raw, err := json.Marshal(FromEmployeeModel(m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "hash-rahasia") || strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Errorf("password bocor di response: %s", raw)
	}
}
