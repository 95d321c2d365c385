package utility

import (
	"strings"
	"sync"
	"time"
)

// cacheItem giữ giá trị cùng thời điểm hết hạn riêng của từng entry
type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là struct để quản lý cache với thời gian sống riêng cho từng entry
// và thời gian dọn dẹp định kỳ
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration // TTL mặc định khi Set không chỉ định
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo một instance mới của Cache
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL lưu giá trị vào cache với TTL riêng.
// ttl <= 0 nghĩa là entry không hết hạn theo thời gian.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{value: value, expiresAt: expiresAt}
}

// Get lấy giá trị từ cache. Entry hết hạn được coi là miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		// Hết hạn: xóa lazily, cleanupLoop sẽ dọn những entry chưa được đụng tới
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

// Delete xóa một key khỏi cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// InvalidateContaining xóa mọi entry có key chứa bất kỳ substring nào được truyền vào.
// Dùng cho coarse invalidation sau mỗi thao tác ghi: ví dụ
// InvalidateContaining("allProducts", "page:") xóa toàn bộ key danh sách và key phân trang.
// Trả về số entry đã xóa.
func (c *Cache) InvalidateContaining(substrings ...string) int {
	if len(substrings) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	deleted := 0
	for key := range c.items {
		for _, sub := range substrings {
			if strings.Contains(key, sub) {
				delete(c.items, key)
				deleted++
				break
			}
		}
	}
	return deleted
}

// Len trả về số entry hiện có (kể cả entry hết hạn chưa bị dọn)
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop dừng goroutine dọn dẹp của cache
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop dọn dẹp các entry hết hạn định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, item := range c.items {
				if !item.expiresAt.IsZero() && now.After(item.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
