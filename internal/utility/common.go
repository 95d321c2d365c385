package utility

import (
	"fmt"
	"strings"
	"time"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và in ra lỗi thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		// Sử dụng recover() để bắt lỗi panic nếu có
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli dùng để lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
// Hàm này sẽ được sử dụng khi cần timestamp hiện tại
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// UploadFileName tách tên file từ đường dẫn ảnh lưu trong document
// (vd "/upload/1700000000000_a.png" → "1700000000000_a.png").
// Đường dẫn rỗng trả về chuỗi rỗng.
func UploadFileName(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if idx := strings.LastIndex(imagePath, "/"); idx >= 0 {
		return imagePath[idx+1:]
	}
	return imagePath
}
