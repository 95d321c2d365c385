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

// PopupService là service quản lý Popup: CRUD kèm file ảnh, cache danh sách
// và bất biến "tối đa một popup active".
type PopupService struct {
	basesvc.BaseServiceMongo[displaymodels.Popup]
	cache   *utility.Cache
	storage *mediasvc.Storage
}

// NewPopupService tạo mới PopupService với cache và storage riêng
func NewPopupService() (*PopupService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Popups)
	if !exist {
		return nil, fmt.Errorf("failed to get popups collection: %v", common.ErrNotFound)
	}

	storage, err := mediasvc.NewStorage(global.ServerConfig.UploadDir)
	if err != nil {
		return nil, err
	}

	return &PopupService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[displaymodels.Popup](collection),
		cache: utility.NewCache(
			time.Duration(global.ServerConfig.CacheTTL)*time.Second,
			time.Duration(global.ServerConfig.CacheCleanup)*time.Second,
		),
		storage: storage,
	}, nil
}

// Storage trả về storage quản lý file ảnh của service
func (s *PopupService) Storage() *mediasvc.Storage {
	return s.storage
}

// List trả về danh sách popup, mới nhất trước, có cache
func (s *PopupService) List(ctx context.Context, activeRaw string) ([]displaymodels.Popup, error) {
	key := BuildListKey("allPopups", activeRaw)
	if cached, ok := s.cache.Get(key); ok {
		if popups, ok := cached.([]displaymodels.Popup); ok {
			return popups, nil
		}
	}

	filter := bson.M{}
	if activeRaw != "" {
		filter["active"] = activeRaw == "true"
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	popups, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, popups)
	return popups, nil
}

// deactivateAll tắt mọi popup đang active (giữ bất biến một popup active)
func (s *PopupService) deactivateAll(ctx context.Context) error {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": false}}
	_, err := s.UpdateMany(ctx, bson.M{"active": true}, update, nil)
	return err
}

// Create lưu file ảnh, cấp phát popupId rồi insert document.
// Popup tạo với active=true sẽ tắt các popup khác trước khi insert.
func (s *PopupService) Create(ctx context.Context, popup displaymodels.Popup, image *multipart.FileHeader) (displaymodels.Popup, error) {
	var zero displaymodels.Popup

	filename, err := s.storage.Save(image)
	if err != nil {
		return zero, err
	}
	popup.PopupImage = "/upload/" + filename

	id, err := s.NextSequenceID(ctx, "popupId", "popupId")
	if err != nil {
		s.storage.Remove(filename)
		return zero, common.ConvertMongoError(err)
	}
	popup.PopupID = id

	if popup.Active {
		if err := s.deactivateAll(ctx); err != nil {
			s.storage.Remove(filename)
			return zero, err
		}
	}

	created, err := s.InsertOne(ctx, popup)
	if err != nil {
		s.storage.Remove(filename)
		return zero, err
	}

	s.InvalidateListCache()
	return created, nil
}

// Update cập nhật popup theo popupId; image khác nil thì thay ảnh.
// Set active=true qua update cũng tắt các popup khác trước, như SetActiveStatus.
// File ảnh cũ chỉ bị xóa sau khi document update thành công.
func (s *PopupService) Update(ctx context.Context, popupID string, update *basesvc.UpdateData, image *multipart.FileHeader) (displaymodels.Popup, error) {
	var zero displaymodels.Popup

	existing, err := s.FindOne(ctx, bson.M{"popupId": popupID}, nil)
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
		update.Set["popupImage"] = "/upload/" + newFile
		oldFile = utility.UploadFileName(existing.PopupImage)
	}

	if update != nil {
		if active, ok := update.Set["active"].(bool); ok && active {
			if err := s.deactivateAll(ctx); err != nil {
				s.storage.Remove(newFile)
				return zero, err
			}
		}
	}

	updated, err := s.UpdateOne(ctx, bson.M{"popupId": popupID}, update, nil)
	if err != nil {
		s.storage.Remove(newFile)
		return zero, err
	}

	s.storage.Remove(oldFile)
	s.InvalidateListCache()
	return updated, nil
}

// SetActiveStatus bật/tắt trạng thái active của popup.
// Bật một popup sẽ tắt tất cả popup khác trước (tối đa một popup active).
func (s *PopupService) SetActiveStatus(ctx context.Context, popupID string, active bool) (displaymodels.Popup, error) {
	var zero displaymodels.Popup

	if active {
		if err := s.deactivateAll(ctx); err != nil {
			return zero, err
		}
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": active}}
	updated, err := s.UpdateOne(ctx, bson.M{"popupId": popupID}, update, nil)
	if err != nil {
		return zero, err
	}

	s.InvalidateListCache()
	return updated, nil
}

// Delete xóa popup và file ảnh của nó
func (s *PopupService) Delete(ctx context.Context, popupID string) error {
	existing, err := s.FindOne(ctx, bson.M{"popupId": popupID}, nil)
	if err != nil {
		return err
	}

	if err := s.DeleteOne(ctx, bson.M{"popupId": popupID}); err != nil {
		return err
	}

	s.storage.Remove(utility.UploadFileName(existing.PopupImage))
	s.InvalidateListCache()
	return nil
}

// InvalidateListCache xóa mọi cache entry danh sách popup
func (s *PopupService) InvalidateListCache() {
	s.cache.InvalidateContaining("allPopups", "page:")
}

// Cache trả về cache instance của service (phục vụ test và debug)
func (s *PopupService) Cache() *utility.Cache {
	return s.cache
}
