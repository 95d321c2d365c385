package basesvc

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int64
		want  int64
	}{
		{"không có document", 0, 20, 0},
		{"chưa đầy một trang", 5, 20, 1},
		{"chia hết", 40, 20, 2},
		{"dư lẻ sang trang mới", 45, 20, 3},
		{"đúng một document", 1, 20, 1},
		{"limit 1", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, muốn %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
