// Package displaysvc chứa service data access cho domain display (Slider, Popup).
// Danh sách được cache TTL; mọi thao tác ghi xóa cache danh sách trước khi trả về.
package displaysvc

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/service"
	displaymodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/models"
	mediasvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/media/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/utility"
)

// BuildListKey ghép cache key cho danh sách slider/popup: <base> khi không
// filter, <base>?active=<bool> khi có filter (bool là giá trị đã parse).
func BuildListKey(base, activeRaw string) string {
	if activeRaw == "" {
		return base
	}
	return fmt.Sprintf("%s?active=%t", base, activeRaw == "true")
}

// SliderService là service quản lý Slider: CRUD kèm file ảnh và cache danh sách
type SliderService struct {
	*basesvc.BaseServiceMongoImpl[displaymodels.Slider]
	cache   *utility.Cache
	storage *mediasvc.Storage
}

// NewSliderService tạo mới SliderService với cache và storage riêng
func NewSliderService() (*SliderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sliders)
	if !exist {
		return nil, fmt.Errorf("failed to get sliders collection: %v", common.ErrNotFound)
	}

	storage, err := mediasvc.NewStorage(global.ServerConfig.UploadDir)
	if err != nil {
		return nil, err
	}

	return &SliderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[displaymodels.Slider](collection),
		cache: utility.NewCache(
			time.Duration(global.ServerConfig.CacheTTL)*time.Second,
			time.Duration(global.ServerConfig.CacheCleanup)*time.Second,
		),
		storage: storage,
	}, nil
}

// Storage trả về storage quản lý file ảnh của service
func (s *SliderService) Storage() *mediasvc.Storage {
	return s.storage
}

// List trả về danh sách slider, mới nhất trước, có cache.
// activeRaw khác rỗng thì lọc theo active ("true" → true, còn lại → false).
func (s *SliderService) List(ctx context.Context, activeRaw string) ([]displaymodels.Slider, error) {
	key := BuildListKey("allSliders", activeRaw)
	if cached, ok := s.cache.Get(key); ok {
		if sliders, ok := cached.([]displaymodels.Slider); ok {
			return sliders, nil
		}
	}

	filter := bson.M{}
	if activeRaw != "" {
		filter["active"] = activeRaw == "true"
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	sliders, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, sliders)
	return sliders, nil
}

// Create lưu file ảnh, cấp phát sliderId rồi insert document
func (s *SliderService) Create(ctx context.Context, slider displaymodels.Slider, image *multipart.FileHeader) (displaymodels.Slider, error) {
	var zero displaymodels.Slider

	filename, err := s.storage.Save(image)
	if err != nil {
		return zero, err
	}
	slider.SliderImage = "/upload/" + filename

	id, err := s.NextSequenceID(ctx, "sliderId", "sliderId")
	if err != nil {
		s.storage.Remove(filename)
		return zero, common.ConvertMongoError(err)
	}
	slider.SliderID = id

	created, err := s.InsertOne(ctx, slider)
	if err != nil {
		s.storage.Remove(filename)
		return zero, err
	}

	s.InvalidateListCache()
	return created, nil
}

// Update cập nhật slider theo sliderId; image khác nil thì thay ảnh
func (s *SliderService) Update(ctx context.Context, sliderID string, update *basesvc.UpdateData, image *multipart.FileHeader) (displaymodels.Slider, error) {
	var zero displaymodels.Slider

	existing, err := s.FindOne(ctx, bson.M{"sliderId": sliderID}, nil)
	if err != nil {
		return zero, err
	}

	var newFile, oldFile string
	if image != nil {
		newFile, err = s.storage.Save(image)
		if err != nil {
			return zero, err
		}
		if update.Set == nil {
			update.Set = make(map[string]interface{})
		}
		update.Set["sliderImage"] = "/upload/" + newFile
		oldFile = utility.UploadFileName(existing.SliderImage)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"sliderId": sliderID}, update, nil)
	if err != nil {
		s.storage.Remove(newFile)
		return zero, err
	}

	s.storage.Remove(oldFile)
	s.InvalidateListCache()
	return updated, nil
}

// SetActiveStatus bật/tắt trạng thái active của slider
func (s *SliderService) SetActiveStatus(ctx context.Context, sliderID string, active bool) (displaymodels.Slider, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": active}}
	updated, err := s.UpdateOne(ctx, bson.M{"sliderId": sliderID}, update, nil)
	if err != nil {
		return updated, err
	}
	s.InvalidateListCache()
	return updated, nil
}

// Delete xóa slider và file ảnh của nó. Document không tồn tại trả về
// ErrNotFound và không đụng tới file.
func (s *SliderService) Delete(ctx context.Context, sliderID string) error {
	existing, err := s.FindOne(ctx, bson.M{"sliderId": sliderID}, nil)
	if err != nil {
		return err
	}

	if err := s.DeleteOne(ctx, bson.M{"sliderId": sliderID}); err != nil {
		return err
	}

	s.storage.Remove(utility.UploadFileName(existing.SliderImage))
	s.InvalidateListCache()
	return nil
}

// InvalidateListCache xóa mọi cache entry danh sách slider
func (s *SliderService) InvalidateListCache() {
	s.cache.InvalidateContaining("allSliders", "page:")
}

// Cache trả về cache instance của service (phục vụ test và debug)
func (s *SliderService) Cache() *utility.Cache {
	return s.cache
}
