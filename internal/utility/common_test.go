package utility

import "testing"

func TestUploadFileName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/upload/1700000000000_banner.png", "1700000000000_banner.png"},
		{"1700000000000_banner.png", "1700000000000_banner.png"},
		{"/upload/nested/file.jpg", "file.jpg"},
		{"", ""},
		{"/upload/", ""},
	}
	for _, tt := range tests {
		if got := UploadFileName(tt.path); got != tt.want {
			t.Errorf("UploadFileName(%q) = %q, muốn %q", tt.path, got, tt.want)
		}
	}
}
