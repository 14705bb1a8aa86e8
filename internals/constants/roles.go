package constants

import "fmt"

// ==========================
// ✅ Role constants (closed set)
// ==========================
const (
	RoleUser       = "user"
	RoleKaUnit     = "kaunit"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
	RoleOwner      = "owner"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya super-admin yang boleh mengakses fitur %s."
	ErrOnlyKaUnitCanAccess     = "❌ Hanya kepala unit ke atas yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorKaUnit(feature string) string {
	return fmt.Sprintf(ErrOnlyKaUnitCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleKaUnit,
		RoleAdmin,
		RoleSuperAdmin,
		RoleOwner,
	}

	// admin-tier: boleh kelola pegawai (approve, reset password)
	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
		RoleOwner,
	}

	KaUnitAndAbove = []string{
		RoleKaUnit,
		RoleAdmin,
		RoleSuperAdmin,
		RoleOwner,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

// IsValidRole memastikan role berasal dari closed set di atas.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Capability table
// ==========================
// Semua pengecekan role di route lewat sini, bukan string compare
// tersebar di tiap controller.

const (
	CapSettingsWrite         = "settings:write"
	CapSunnahWrite           = "sunnah:write"
	CapEmployeeResetPassword = "employee:reset-password"
	CapEmployeeActivate      = "employee:activate"
	CapTeamManage            = "team:manage"
	CapJobStructureRead      = "job-structure:read"
	CapTadarusApprove        = "tadarus:approve"
)

var capabilities = map[string][]string{
	CapSettingsWrite:         SuperAdminOnly,
	CapSunnahWrite:           SuperAdminOnly,
	CapEmployeeResetPassword: AdminAndAbove,
	CapEmployeeActivate:      AdminAndAbove,
	CapTeamManage:            KaUnitAndAbove,
	CapJobStructureRead:      AdminAndAbove,
	CapTadarusApprove:        KaUnitAndAbove,
}

// Can menjawab apakah role boleh melakukan action.
// Role atau action di luar daftar selalu deny.
func Can(role, action string) bool {
	allowed, ok := capabilities[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
