// internals/features/employees/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"simbina_backend/internals/configs"
	empModel "simbina_backend/internals/features/employees/model"
)

const AccessTTL = 24 * time.Hour

// BuildAccessClaims membentuk klaim sesi: {sub, email, user_name, nip, role}.
func BuildAccessClaims(emp empModel.EmployeeModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       emp.ID.String(),
		"email":     emp.Email,
		"user_name": emp.FullName,
		"nip":       emp.NIP,
		"role":      emp.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
}

// IssueAccessToken membuat JWT HS256 bertanda tangan JWT_SECRET.
func IssueAccessToken(emp empModel.EmployeeModel, now time.Time) (string, error) {
	return IssueAccessTokenWithSecret(emp, now, configs.JWTSecret)
}

func IssueAccessTokenWithSecret(emp empModel.EmployeeModel, now time.Time, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(emp, now))
	return token.SignedString([]byte(secret))
}

// SetAccessCookie menyimpan token di cookie http-only.
// Cookie user_id dipakai endpoint /auth/verify (profil tersanitasi pre-aktivasi).
func SetAccessCookie(c *fiber.Ctx, token string, empID string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(AccessTTL),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
	})
	SetUserIDCookie(c, empID, now)
}

// SetUserIDCookie dipasang juga saat register (akun masih nonaktif, belum
// punya access_token) supaya UI bisa polling /auth/verify sampai diaktifkan.
func SetUserIDCookie(c *fiber.Ctx, empID string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "user_id",
		Value:    empID,
		Expires:  now.Add(AccessTTL),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAccessCookies menghapus cookie sesi (logout).
func ClearAccessCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "user_id"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
}
