package basesvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/logger"
)

// sequenceAllocator giữ mutex cấp phát ID cho một service.
// Mutex chỉ chặn các request cùng process; unique index trên field ID
// là lớp bảo vệ cuối cùng chống trùng lặp.
type sequenceAllocator struct {
	mu sync.Mutex
}

// NextSequenceNumber tìm số nguyên dương nhỏ nhất chưa có trong danh sách.
// Danh sách không cần sắp xếp trước; các lỗ hổng do xóa sẽ được tái sử dụng.
func NextSequenceNumber(used []int) int {
	set := make(map[int]struct{}, len(used))
	for _, n := range used {
		if n > 0 {
			set[n] = struct{}{}
		}
	}
	next := 1
	for {
		if _, ok := set[next]; !ok {
			return next
		}
		next++
	}
}

// FormatSequenceID tạo business ID dạng <prefix> + số thứ tự 4 chữ số
// (ví dụ categoryId0001). Số vượt quá 4 chữ số vẫn được giữ nguyên.
func FormatSequenceID(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}

// ParseSequenceNumber tách số thứ tự từ một business ID.
// Trả về false nếu ID không bắt đầu bằng prefix hoặc phần đuôi không phải số.
func ParseSequenceNumber(id, prefix string) (int, bool) {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok || suffix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// NextSequenceID cấp phát business ID tiếp theo cho field trong collection.
// Quét tất cả ID hiện có, parse phần số sau prefix rồi lấy số nhỏ nhất còn trống.
// ID sai định dạng được bỏ qua (có ghi log) thay vì làm hỏng việc cấp phát.
func (s *BaseServiceMongoImpl[T]) NextSequenceID(ctx context.Context, field, prefix string) (string, error) {
	s.seq.mu.Lock()
	defer s.seq.mu.Unlock()

	opts := options.Find().
		SetProjection(bson.M{field: 1, "_id": 0}).
		SetSort(bson.M{field: 1})

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	var used []int
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		id, ok := doc[field].(string)
		if !ok {
			continue
		}
		n, ok := ParseSequenceNumber(id, prefix)
		if !ok {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"collection": s.collection.Name(),
				"field":      field,
				"value":      id,
			}).Warn("Bỏ qua ID sai định dạng khi cấp phát số thứ tự")
			continue
		}
		used = append(used, n)
	}
	if err := cursor.Err(); err != nil {
		return "", err
	}

	return FormatSequenceID(prefix, NextSequenceNumber(used)), nil
}
