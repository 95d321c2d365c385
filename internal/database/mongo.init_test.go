package database

import "testing"

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want int
	}{
		{"mặc định tăng dần", "single", 1},
		{"single tăng dần", "single:1", 1},
		// Dạng rút gọn trên các field createdAt
		{"single giảm dần", "single:-1", -1},
		{"order giảm dần", "single,order:-1", -1},
		{"unique không ảnh hưởng", "unique", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseOrder(tt.tag); got != tt.want {
				t.Errorf("parseOrder(%q) = %d, muốn %d", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseIndexTag(t *testing.T) {
	configs := parseIndexTag("unique;single:-1")
	if len(configs) != 2 {
		t.Fatalf("parseIndexTag trả %d cấu hình, muốn 2", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Errorf("cấu hình đầu = %v, muốn có unique", configs[0])
	}
	if v, ok := configs[1]["single"]; !ok || v != "-1" {
		t.Errorf("cấu hình sau = %v, muốn single:-1", configs[1])
	}
}
