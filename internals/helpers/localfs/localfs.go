// Package localfs: object-storage shim di filesystem lokal.
// Layout file: {root}/{bucket}/{filePath}, URL publik /uploads/{bucket}/{filePath}.
package localfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"simbina_backend/internals/configs"
)

var ErrUnsafePath = errors.New("path tidak aman")

// StorageRoot mengembalikan root penyimpanan (default public/uploads).
func StorageRoot() string {
	return configs.GetEnv("UPLOAD_ROOT", filepath.Join("public", "uploads"))
}

// ValidatePath menolak path traversal. Reject, JANGAN sanitize-lalu-lanjut:
// path yang mengandung "..", diawali separator, atau memakai backslash
// langsung error sebelum filesystem disentuh.
func ValidatePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrUnsafePath
	}
	if strings.Contains(p, "..") {
		return ErrUnsafePath
	}
	if strings.HasPrefix(p, "/") {
		return ErrUnsafePath
	}
	if strings.Contains(p, "\\") {
		return ErrUnsafePath
	}
	return nil
}

// Resolve menggabungkan bucket+path di bawah root, setelah ValidatePath lolos.
func Resolve(bucket, path string) (string, error) {
	if err := ValidatePath(bucket); err != nil {
		return "", err
	}
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	return filepath.Join(StorageRoot(), bucket, path), nil
}

// PublicURL membentuk URL publik untuk file yang sudah tersimpan.
func PublicURL(bucket, path string) string {
	return "/uploads/" + bucket + "/" + strings.TrimPrefix(path, "/")
}

/* =======================================================
   Content-Type by extension (untuk route serve)
======================================================= */

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
}

func ContentTypeByExt(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

/* =======================================================
   Penamaan file unik (avatar/tanda tangan)
======================================================= */

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func SanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), SanitizeFilename(originalFilename))
}

/* =======================================================
   Tulis / hapus di bawah root
======================================================= */

// WriteFile membuat direktori perantara lalu menulis isi file.
func WriteFile(absPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0o644)
}

// Remove menghapus file, atau direktori secara rekursif.
// Mengembalikan os.ErrNotExist kalau target tidak ada.
func Remove(absPath string) error {
	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(absPath)
	}
	return os.Remove(absPath)
}
