// Package mediasvc quản lý vòng đời file ảnh upload trên đĩa
package mediasvc

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/logger"
)

// Storage lưu và xóa file upload trong một thư mục cố định.
// Tên file lưu trên đĩa có dạng <unix-millis>_<tên gốc> để tránh ghi đè.
type Storage struct {
	dir string
}

// NewStorage tạo Storage và đảm bảo thư mục upload tồn tại
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(
			common.ErrCodeStorage,
			"Failed to prepare upload directory",
			common.StatusInternalServerError,
			err.Error(),
		)
	}
	return &Storage{dir: dir}, nil
}

// Dir trả về đường dẫn thư mục upload
func (s *Storage) Dir() string {
	return s.dir
}

// Save ghi file multipart xuống đĩa, trả về tên file đã lưu.
// Ghi hoàn tất trước khi trả về; caller chỉ insert document sau khi Save thành công.
func (s *Storage) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", common.NewError(
			common.ErrCodeStorage,
			"Failed to read uploaded file",
			common.StatusBadRequest,
			err.Error(),
		)
	}
	defer src.Close()

	// Chỉ lấy base name, chặn path traversal từ tên file client gửi lên
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeStorage,
			"Failed to store uploaded file",
			common.StatusInternalServerError,
			err.Error(),
		)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", common.NewError(
			common.ErrCodeStorage,
			"Failed to store uploaded file",
			common.StatusInternalServerError,
			err.Error(),
		)
	}

	return name, nil
}

// Remove xóa một file đã lưu. File không tồn tại không coi là lỗi
// (document có thể trỏ tới file đã bị dọn thủ công).
func (s *Storage) Remove(filename string) error {
	if filename == "" {
		return nil
	}

	path, err := s.Path(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"file": filename,
		}).WithError(err).Error("Không xóa được file upload")
		return common.NewError(
			common.ErrCodeStorage,
			"Failed to remove stored file",
			common.StatusInternalServerError,
			err.Error(),
		)
	}

	return nil
}

// Path trả về đường dẫn tuyệt đối của một file trong thư mục upload.
// Tên file chứa separator bị từ chối để chặn traversal.
func (s *Storage) Path(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			"Invalid file name",
			common.StatusBadRequest,
			nil,
		)
	}
	return filepath.Join(s.dir, filename), nil
}

// Exists kiểm tra file có tồn tại trong thư mục upload không
func (s *Storage) Exists(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
