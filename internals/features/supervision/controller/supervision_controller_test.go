package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Jalur sebelum query DB bisa diuji tanpa koneksi: validasi payload
// dan allow-list kolom role pembina.
func newSupervisionTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewSupervisionController(nil)
	app.Post("/api/supervision/manage-team", ctrl.ManageTeam)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestManageTeamRejectsUnknownRole(t *testing.T) {
	app := newSupervisionTestApp()

	// role di luar allow-list tidak boleh pernah jadi nama kolom
	resp := postJSON(t, app, "/api/supervision/manage-team", map[string]any{
		"role":         "kadiv; DROP TABLE employees;--",
		"supervisorId": uuid.New().String(),
		"employeeIds":  []string{uuid.New().String()},
		"action":       "add",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestManageTeamValidatesPayload(t *testing.T) {
	app := newSupervisionTestApp()

	cases := []map[string]any{
		// employeeIds kosong
		{"role": "kaunit", "supervisorId": uuid.New().String(), "employeeIds": []string{}, "action": "add"},
		// action tidak dikenal
		{"role": "kaunit", "supervisorId": uuid.New().String(), "employeeIds": []string{uuid.New().String()}, "action": "replace"},
		// supervisorId hilang
		{"role": "kaunit", "employeeIds": []string{uuid.New().String()}, "action": "add"},
	}
	for i, payload := range cases {
		resp := postJSON(t, app, "/api/supervision/manage-team", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, resp.StatusCode)
		}
	}
}
