package displaysvc

import "testing"

func TestBuildListKey(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		activeRaw string
		want      string
	}{
		{"không filter", "allSliders", "", "allSliders"},
		{"active true", "allSliders", "true", "allSliders?active=true"},
		// Giá trị khác "true" đều parse về false
		{"active false", "allSliders", "false", "allSliders?active=false"},
		{"active không hợp lệ", "allSliders", "yes", "allSliders?active=false"},
		{"popup", "allPopups", "true", "allPopups?active=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildListKey(tt.base, tt.activeRaw); got != tt.want {
				t.Errorf("BuildListKey(%q, %q) = %q, muốn %q", tt.base, tt.activeRaw, got, tt.want)
			}
		})
	}
}
