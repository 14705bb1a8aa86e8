package constants

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		role, action string
		want         bool
	}{
		// settings hanya super-admin
		{RoleSuperAdmin, CapSettingsWrite, true},
		{RoleAdmin, CapSettingsWrite, false},
		{RoleOwner, CapSettingsWrite, false},
		{RoleUser, CapSettingsWrite, false},

		// reset password: admin-tier
		{RoleAdmin, CapEmployeeResetPassword, true},
		{RoleSuperAdmin, CapEmployeeResetPassword, true},
		{RoleOwner, CapEmployeeResetPassword, true},
		{RoleKaUnit, CapEmployeeResetPassword, false},
		{RoleUser, CapEmployeeResetPassword, false},

		// tim binaan: kaunit ke atas
		{RoleKaUnit, CapTeamManage, true},
		{RoleUser, CapTeamManage, false},

		// role/action di luar daftar selalu deny
		{"hacker", CapSettingsWrite, false},
		{RoleSuperAdmin, "unknown:action", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := Can(tc.role, tc.action); got != tc.want {
			t.Errorf("Can(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false", r)
		}
	}
	for _, r := range []string{"", "root", "Admin", "superadmin"} {
		if IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = true", r)
		}
	}
}
