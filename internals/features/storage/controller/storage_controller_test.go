package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewStorageController()
	storage := app.Group("/api/storage")
	storage.Post("/upload", ctrl.Upload)
	storage.Get("/serve", ctrl.Serve)
	storage.Delete("/manage", ctrl.Manage)
	return app
}

func multipartBody(t *testing.T, bucket, filePath, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	_ = w.WriteField("bucket", bucket)
	_ = w.WriteField("filePath", filePath)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()
	return buf, w.FormDataContentType()
}

func TestUploadServeDeleteFlow(t *testing.T) {
	t.Setenv("UPLOAD_ROOT", t.TempDir())
	app := newTestApp()

	// upload ke bucket non-gambar (tanpa konversi)
	body, ct := multipartBody(t, "docs", "emp123/laporan.txt", "laporan.txt", []byte("halo"))
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	var uploadResp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&uploadResp)
	if uploadResp.Data.URL != "/uploads/docs/emp123/laporan.txt" {
		t.Errorf("url = %q", uploadResp.Data.URL)
	}

	// serve mengembalikan isi + header cache
	serveURL := "/api/storage/serve?bucket=docs&path=" + url.QueryEscape("emp123/laporan.txt")
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, serveURL, nil))
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("serve status = %d", resp.StatusCode)
	}
	if got, _ := io.ReadAll(resp.Body); string(got) != "halo" {
		t.Errorf("serve body = %q", got)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "public, max-age=31536000, immutable" {
		t.Errorf("Cache-Control = %q", cc)
	}

	// hapus direktori emp123 → rekursif, lalu 404 saat diulang
	delURL := "/api/storage/manage?bucket=docs&path=emp123"
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, delURL, nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, delURL, nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete kedua status = %d, want 404", resp.StatusCode)
	}
}

func TestServeRejectsTraversalBeforeFilesystem(t *testing.T) {
	// root sengaja TIDAK ada: kalau guard jalan duluan, hasilnya 403,
	// bukan 404 dari os.Stat.
	t.Setenv("UPLOAD_ROOT", filepath.Join(t.TempDir(), "tidak-pernah-dibuat"))
	app := newTestApp()

	for _, p := range []string{"..%2Fsecret", "..", "%2Fetc%2Fpasswd", "a%5Cb"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/storage/serve?bucket=avatars&path="+p, nil))
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("path %q: status = %d, want 403", p, resp.StatusCode)
		}
	}
}

func TestManageRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	t.Setenv("UPLOAD_ROOT", root)

	// file di luar root yang tidak boleh tersentuh
	outside := filepath.Join(root, "..", "korban.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	app := newTestApp()
	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete,
		"/api/storage/manage?bucket=avatars&path=..%2Fkorban.txt", nil))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Errorf("file di luar root ikut terhapus: %v", err)
	}
}

func TestUploadRequiresFields(t *testing.T) {
	t.Setenv("UPLOAD_ROOT", t.TempDir())
	app := newTestApp()

	body, ct := multipartBody(t, "", "x.txt", "x.txt", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
