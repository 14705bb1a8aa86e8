// internals/features/storage/controller/storage_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "simbina_backend/internals/helpers"
	"simbina_backend/internals/helpers/localfs"
)

const maxUploadSize = 5 * 1024 * 1024

type StorageController struct{}

func NewStorageController() *StorageController {
	return &StorageController{}
}

// UPLOAD
// POST /api/storage/upload — multipart: file, bucket, filePath.
// Bucket gambar (avatars/signatures) dikonversi WebP dulu.
func (h *StorageController) Upload(c *fiber.Ctx) error {
	bucket := strings.TrimSpace(c.FormValue("bucket"))
	filePath := strings.TrimSpace(c.FormValue("filePath"))
	if bucket == "" || filePath == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "bucket dan filePath wajib diisi")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file wajib diisi")
	}
	if fileHeader.Size > maxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file melebihi 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuka file")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca file")
	}

	if localfs.IsImageBucket(bucket) {
		converted, err := localfs.ConvertToWebP(data, fileHeader.Filename)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File bukan gambar yang valid")
		}
		data = converted
		filePath = localfs.WebPFilename(filePath)
	}

	absPath, err := localfs.Resolve(bucket, filePath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Path tidak diizinkan")
	}
	if err := localfs.WriteFile(absPath, data); err != nil {
		log.Println("[ERROR] storage upload:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	return helper.JsonOK(c, "File tersimpan", fiber.Map{
		"url":    localfs.PublicURL(bucket, filePath),
		"bucket": bucket,
		"path":   filePath,
	})
}

// SERVE
// GET /api/storage/serve?bucket=&path=
// Guard traversal WAJIB jalan sebelum filesystem disentuh; error body plain text.
func (h *StorageController) Serve(c *fiber.Ctx) error {
	bucket := c.Query("bucket")
	path := c.Query("path")
	if bucket == "" || path == "" {
		return c.Status(fiber.StatusBadRequest).SendString("bucket dan path wajib diisi")
	}

	absPath, err := localfs.Resolve(bucket, path)
	if err != nil {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden")
	}

	info, err := os.Stat(absPath)
	if err != nil || info.IsDir() {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	c.Set(fiber.HeaderContentType, localfs.ContentTypeByExt(path))
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendFile(absPath)
}

// MANAGE (DELETE)
// DELETE /api/storage/manage?bucket=&path= — file atau direktori (rekursif)
func (h *StorageController) Manage(c *fiber.Ctx) error {
	bucket := c.Query("bucket")
	path := c.Query("path")
	if bucket == "" || path == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "bucket dan path wajib diisi")
	}

	absPath, err := localfs.Resolve(bucket, path)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Path tidak diizinkan")
	}

	if err := localfs.Remove(absPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return helper.JsonError(c, fiber.StatusNotFound, "File tidak ditemukan")
		}
		log.Println("[ERROR] storage delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus file")
	}

	return helper.JsonDeleted(c, "File dihapus", nil)
}
