package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Nama Locals yang dipakai lintas controller (HARUS seragam)
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocUserName  = "user_name"
	LocUserEmail = "user_email"
	LocUserNIP   = "user_nip"
)

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim invalid")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		// kompatibel dengan token lama yang pakai "id"
		sub, _ = claims["id"].(string)
	}
	return uuid.Parse(sub)
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["role"].(string); ok {
		c.Locals(LocUserRole, v)
	}
	if v, ok := claims["user_name"].(string); ok {
		c.Locals(LocUserName, v)
	}
	if v, ok := claims["email"].(string); ok {
		c.Locals(LocUserEmail, v)
	}
	if v, ok := claims["nip"].(string); ok {
		c.Locals(LocUserNIP, v)
	}
}

// GetUserID mengambil user_id dari Locals (diset AuthMiddleware).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user information")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid user information")
	}
	return id, nil
}

// GetUserRole mengambil role dari Locals.
func GetUserRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return role, nil
}
