package utility

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	cache := NewCache(5*time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("page:1-limit:20", "value1")
	got, ok := cache.Get("page:1-limit:20")
	if !ok || got != "value1" {
		t.Errorf("Get = (%v, %v), muốn (value1, true)", got, ok)
	}

	if _, ok := cache.Get("không tồn tại"); ok {
		t.Error("Get key không tồn tại phải trả về miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Hour)
	defer cache.Stop()

	cache.Set("key", "value")
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Error("entry hết hạn phải là miss")
	}
	// Get lazily xóa entry hết hạn
	if cache.Len() != 0 {
		t.Errorf("Len = %d sau khi entry hết hạn được Get, muốn 0", cache.Len())
	}
}

func TestCacheSetWithTTLNoExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Hour)
	defer cache.Stop()

	// ttl <= 0 nghĩa là không hết hạn
	cache.SetWithTTL("forever", "value", 0)
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("forever"); !ok {
		t.Error("entry với ttl=0 không được hết hạn")
	}
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("key", "value")
	cache.Delete("key")
	if _, ok := cache.Get("key"); ok {
		t.Error("key đã Delete vẫn còn trong cache")
	}
}

func TestCacheInvalidateContaining(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("page:1-limit:20", 1)
	cache.Set("page:2-limit:20-active:true", 2)
	cache.Set("allSliders", 3)
	cache.Set("allSliders?active=true", 4)
	cache.Set("allPopups", 5)

	deleted := cache.InvalidateContaining("allSliders", "page:")
	if deleted != 4 {
		t.Errorf("InvalidateContaining xóa %d entry, muốn 4", deleted)
	}
	if _, ok := cache.Get("allPopups"); !ok {
		t.Error("entry không khớp substring bị xóa nhầm")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, muốn 1", cache.Len())
	}

	// Không truyền substring thì không xóa gì
	if deleted := cache.InvalidateContaining(); deleted != 0 {
		t.Errorf("InvalidateContaining() = %d, muốn 0", deleted)
	}
}

func TestCacheCleanupLoop(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 20*time.Millisecond)
	defer cache.Stop()

	cache.Set("key", "value")
	time.Sleep(60 * time.Millisecond)

	// cleanupLoop phải dọn entry hết hạn mà không cần Get
	if cache.Len() != 0 {
		t.Errorf("Len = %d sau chu kỳ dọn dẹp, muốn 0", cache.Len())
	}
}
