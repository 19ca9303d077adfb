package class

import "testing"

func TestClassItem_EffectiveStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"Pending", StatusPending, StatusPending},
		{"Approved", StatusApproved, StatusApproved},
		{"Denied", StatusDenied, StatusDenied},
		{"Empty reads as pending", "", StatusPending},
		{"Unknown value reads as pending", "archived", StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ClassItem{Status: tt.status}
			if got := item.EffectiveStatus(); got != tt.want {
				t.Errorf("EffectiveStatus() = %q; want %q", got, tt.want)
			}
		})
	}
}
