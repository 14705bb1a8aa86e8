// internals/features/employees/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simbina_backend/internals/configs"
	empDTO "simbina_backend/internals/features/employees/dto"
	empModel "simbina_backend/internals/features/employees/model"
	empService "simbina_backend/internals/features/employees/service"
	helper "simbina_backend/internals/helpers"
	authmw "simbina_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// REGISTER
// POST /api/auth/register — akun dibuat nonaktif, menunggu approval admin
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req empDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	m := req.ToModel()
	m.Password = string(hashed)

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau NIP sudah terdaftar")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	// cookie user_id dipasang sekarang, supaya /auth/verify bisa dipolling
	// sebelum akun diaktifkan (belum ada access_token)
	empService.SetUserIDCookie(c, m.ID.String(), time.Now().UTC())

	return helper.JsonCreated(c, "Registrasi berhasil, menunggu aktivasi admin", empDTO.FromEmployeeModel(*m))
}

// LOGIN
// POST /api/auth/login — 401 generik, jangan bocorkan apakah email terdaftar
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req empDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var emp empModel.EmployeeModel
	if err := h.DB.Where("employee_email = ?", req.Email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !emp.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum diaktifkan admin")
	}

	return h.issueSession(c, emp)
}

// GOOGLE LOGIN
// POST /api/auth/google — verifikasi ID token, login bila akun ada & aktif
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req empDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	clientID := configs.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	var emp empModel.EmployeeModel
	if err := h.DB.Where("employee_email = ?", strings.ToLower(claimSet.Email)).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// akun harus didaftarkan dulu lewat register (butuh NIP)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun belum terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !emp.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum diaktifkan admin")
	}

	return h.issueSession(c, emp)
}

func (h *AuthController) issueSession(c *fiber.Ctx, emp empModel.EmployeeModel) error {
	now := time.Now().UTC()
	token, err := empService.IssueAccessToken(emp, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	empService.SetAccessCookie(c, token, emp.ID.String(), now)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"accessToken": token,
		"user":        empDTO.FromEmployeeModel(emp),
	})
}

// LOGOUT
// POST /api/auth/logout dan GET /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	empService.ClearAccessCookies(c)
	if c.Method() == fiber.MethodGet {
		return c.Redirect("/", fiber.StatusFound)
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ME
// GET /api/auth/me — profil sesi aktif (middleware sudah menolak nonaktif 403)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var emp empModel.EmployeeModel
	if err := h.DB.First(&emp, "employee_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "ok", empDTO.FromEmployeeModel(emp))
}

// VERIFY
// GET /api/auth/verify — profil tersanitasi via cookie user_id.
// Dipakai UI sebelum akun aktif (register → polling status aktivasi),
// makanya TIDAK lewat AuthMiddleware.
func (h *AuthController) Verify(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("user_id"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Cookie sesi tidak valid")
	}

	var emp empModel.EmployeeModel
	if err := h.DB.First(&emp, "employee_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "ok", empDTO.FromEmployeeModel(emp))
}

// REFRESH
// POST /api/auth/refresh — reissue token dengan klaim sama + expiry baru
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var emp empModel.EmployeeModel
	if err := h.DB.First(&emp, "employee_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	token, err := empService.IssueAccessToken(emp, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	empService.SetAccessCookie(c, token, emp.ID.String(), now)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"accessToken": token,
	})
}
