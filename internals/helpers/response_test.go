package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// fiber.NewError dari middleware (auth/role) harus tetap keluar sebagai
// envelope JSON, bukan plain text dari handler default fiber.
func TestErrorHandlerKeepsEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/private", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "Token tidak ditemukan")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("success harus false")
	}
	if body.ErrorCode != "UNAUTHORIZED" {
		t.Errorf("error_code = %q, want UNAUTHORIZED", body.ErrorCode)
	}
	if body.Message != "Token tidak ditemukan" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestErrorHandlerUnknownRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tidak-ada", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.ErrorCode != "NOT_FOUND" {
		t.Errorf("envelope salah: %+v", body)
	}
}
