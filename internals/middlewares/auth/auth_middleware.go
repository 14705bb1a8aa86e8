// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simbina_backend/internals/configs"
	helper "simbina_backend/internals/helpers"
)

// AuthMiddleware memverifikasi access token (cookie http-only atau Bearer),
// memastikan pegawai masih aktif, lalu menyimpan klaim ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil token (cookie dulu, lalu Authorization header)
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token missing")
		}
		helper.SetRawAccessToken(c, tokenString)

		// 2) Parse & verifikasi signature
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validasi exp (leeway 30 detik)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) Ambil user_id & validasi pegawai aktif
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureEmployeeActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			if errors.Is(err, errEmployeeInactive) {
				return fiber.NewError(fiber.StatusForbidden, "Akun Anda belum diaktifkan atau telah dinonaktifkan")
			}
			log.Println("[ERROR] ensureEmployeeActive:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 5) Simpan klaim ke context
		c.Locals("user_id", userID.String())
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}

var errEmployeeInactive = errors.New("employee inactive")

func ensureEmployeeActive(db *gorm.DB, userID uuid.UUID) error {
	var isActive bool
	err := db.Raw(`SELECT employee_is_active FROM employees WHERE employee_id = ?`, userID).
		Scan(&isActive).Error
	if err != nil {
		return err
	}
	if !isActive {
		// Scan ke bool tidak membedakan "tidak ada row" dengan false,
		// cek eksistensi hanya saat tidak aktif (jalur dingin).
		var exists bool
		if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = ?)`, userID).
			Scan(&exists).Error; err != nil {
			return err
		}
		if !exists {
			return gorm.ErrRecordNotFound
		}
		return errEmployeeInactive
	}
	return nil
}
