package user

import "testing"

func TestUser_EffectiveRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{"Student", RoleStudent, RoleStudent},
		{"Instructor", RoleInstructor, RoleInstructor},
		{"Admin", RoleAdmin, RoleAdmin},
		{"Unassigned", "", RoleNone},
		{"Unknown value normalized", "superuser", RoleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr := User{Role: tt.role}
			if got := usr.EffectiveRole(); got != tt.want {
				t.Errorf("EffectiveRole() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestUser_roleChecks(t *testing.T) {
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin not recognized")
	}
	if (User{Role: "superuser"}).IsAdmin() {
		t.Error("unknown role treated as admin")
	}
	if !(User{Role: RoleInstructor}).IsInstructor() {
		t.Error("instructor not recognized")
	}
	if !(User{Role: RoleStudent}).IsStudent() {
		t.Error("student not recognized")
	}
}
