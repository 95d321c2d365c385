package mediasvc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoragePathRejectsTraversal(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage lỗi: %v", err)
	}

	for _, name := range []string{"", "../secret", "a/b.png", "/etc/passwd"} {
		if _, err := storage.Path(name); err == nil {
			t.Errorf("Path(%q) phải trả lỗi", name)
		}
	}

	path, err := storage.Path("1700000000000_a.png")
	if err != nil {
		t.Fatalf("Path hợp lệ trả lỗi: %v", err)
	}
	if filepath.Base(path) != "1700000000000_a.png" {
		t.Errorf("Path = %q, tên file không khớp", path)
	}
}

func TestStorageRemove(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage lỗi: %v", err)
	}

	name := "1700000000000_a.png"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !storage.Exists(name) {
		t.Fatal("Exists = false cho file vừa ghi")
	}
	if err := storage.Remove(name); err != nil {
		t.Fatalf("Remove lỗi: %v", err)
	}
	if storage.Exists(name) {
		t.Error("file vẫn tồn tại sau Remove")
	}

	// Xóa file không tồn tại không coi là lỗi
	if err := storage.Remove("khong_ton_tai.png"); err != nil {
		t.Errorf("Remove file không tồn tại trả lỗi: %v", err)
	}
	// Tên rỗng là no-op
	if err := storage.Remove(""); err != nil {
		t.Errorf("Remove(\"\") trả lỗi: %v", err)
	}
}
