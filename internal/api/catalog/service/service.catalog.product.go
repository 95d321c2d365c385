package catalogsvc

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/models"
	basesvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/service"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	mediasvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/media/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/utility"
)

const (
	searchSuggestionLimit = 10 // Số gợi ý tối đa của substring search
	fuzzySuggestionLimit  = 30 // Số gợi ý tối đa của fuzzy search
	randomSampleSize      = 30 // Kích thước mẫu của random suggestions
)

// ProductListQuery là tham số của danh sách sản phẩm phân trang.
// ActiveRaw giữ nguyên văn query param để ghép cache key; chỉ ActiveRaw khác
// rỗng mới kích hoạt filter (giá trị "true" → true, còn lại → false).
type ProductListQuery struct {
	Page      int64
	Limit     int64
	ActiveRaw string
	Category  string
	Search    string
}

// ProductService là service quản lý Product: CRUD kèm file ảnh,
// danh sách phân trang có cache và các query gợi ý tìm kiếm.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	cache   *utility.Cache
	storage *mediasvc.Storage
}

// NewProductService tạo mới ProductService với cache và storage riêng
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	storage, err := mediasvc.NewStorage(global.ServerConfig.UploadDir)
	if err != nil {
		return nil, err
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
		cache: utility.NewCache(
			time.Duration(global.ServerConfig.CacheTTL)*time.Second,
			time.Duration(global.ServerConfig.CacheCleanup)*time.Second,
		),
		storage: storage,
	}, nil
}

// Storage trả về storage quản lý file ảnh của service
func (s *ProductService) Storage() *mediasvc.Storage {
	return s.storage
}

// BuildListCacheKey ghép cache key cho danh sách phân trang.
// Các segment filter chỉ xuất hiện khi filter có mặt, theo đúng thứ tự
// active, category, search.
func BuildListCacheKey(q ProductListQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "page:%d-limit:%d", q.Page, q.Limit)
	if q.ActiveRaw != "" {
		fmt.Fprintf(&b, "-active:%s", q.ActiveRaw)
	}
	if q.Category != "" {
		fmt.Fprintf(&b, "-category:%s", q.Category)
	}
	if q.Search != "" {
		fmt.Fprintf(&b, "-search:%s", q.Search)
	}
	return b.String()
}

// buildListFilter dựng filter MongoDB từ query params
func buildListFilter(q ProductListQuery) bson.M {
	filter := bson.M{}
	if q.ActiveRaw != "" {
		filter["active"] = q.ActiveRaw == "true"
	}
	if q.Category != "" {
		filter["categoryName"] = q.Category
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"brandName": re},
			{"moleculeName": re},
		}
	}
	return filter
}

// FindPage trả về một trang sản phẩm, mới nhất trước.
// Kết quả được cache theo key BuildListCacheKey; tổng số document đếm trên
// toàn bộ filter, độc lập với slice trả về.
func (s *ProductService) FindPage(ctx context.Context, q ProductListQuery) (*basemodels.PaginateResult[catalogmodels.Product], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}

	key := BuildListCacheKey(q)
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(*basemodels.PaginateResult[catalogmodels.Product]); ok {
			return result, nil
		}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	result, err := s.FindWithPagination(ctx, buildListFilter(q), q.Page, q.Limit, opts)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, result)
	return result, nil
}

// SearchSuggestions tìm gợi ý theo substring (không phân biệt hoa thường)
// trên brandName hoặc moleculeName, gom nhóm theo moleculeName lấy bản ghi
// đầu tiên mỗi nhóm, tối đa 10 kết quả.
func (s *ProductService) SearchSuggestions(ctx context.Context, query string) ([]catalogmodels.ProductSuggestion, error) {
	re := primitive.Regex{Pattern: query, Options: "i"}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": []bson.M{
				{"brandName": re},
				{"moleculeName": re},
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$moleculeName",
			"moleculeName": bson.M{"$first": "$moleculeName"},
			"brandName":    bson.M{"$first": "$brandName"},
		}}},
		{{Key: "$limit", Value: searchSuggestionLimit}},
	}
	return s.aggregateSuggestions(ctx, pipeline)
}

// BuildFuzzyPattern dựng regex pattern cho fuzzy search: mỗi ký tự của query
// phải xuất hiện theo đúng thứ tự nhưng không cần liền kề (vd "apc" → "a.*p.*c").
// Ký tự đặc biệt được escape để query không bị hiểu là regex.
func BuildFuzzyPattern(query string) string {
	parts := make([]string, 0, len(query))
	for _, r := range query {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return strings.Join(parts, ".*")
}

// FuzzySearchSuggestions tìm gợi ý theo fuzzy match (ký tự xen kẽ),
// gom nhóm theo moleculeName, tối đa 30 kết quả.
func (s *ProductService) FuzzySearchSuggestions(ctx context.Context, query string) ([]catalogmodels.ProductSuggestion, error) {
	re := primitive.Regex{Pattern: BuildFuzzyPattern(query), Options: "i"}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": []bson.M{
				{"brandName": re},
				{"moleculeName": re},
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$moleculeName",
			"moleculeName": bson.M{"$first": "$moleculeName"},
			"brandName":    bson.M{"$first": "$brandName"},
		}}},
		{{Key: "$limit", Value: fuzzySuggestionLimit}},
	}
	return s.aggregateSuggestions(ctx, pipeline)
}

// aggregateSuggestions chạy pipeline gợi ý và decode về ProductSuggestion
func (s *ProductService) aggregateSuggestions(ctx context.Context, pipeline mongo.Pipeline) ([]catalogmodels.ProductSuggestion, error) {
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []catalogmodels.ProductSuggestion
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if results == nil {
		results = []catalogmodels.ProductSuggestion{}
	}
	return results, nil
}

// RandomSuggestions lấy một mẫu ngẫu nhiên tối đa 30 sản phẩm rồi loại trùng
// theo moleculeName (bản ghi gặp trước thắng)
func (s *ProductService) RandomSuggestions(ctx context.Context) ([]catalogmodels.Product, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": randomSampleSize}}},
	}
	sample, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return DedupeByMolecule(sample), nil
}

// DedupeByMolecule loại các sản phẩm trùng hoạt chất, giữ bản ghi gặp trước.
// Sản phẩm không có moleculeName được giữ nguyên (phân biệt theo productId).
func DedupeByMolecule(products []catalogmodels.Product) []catalogmodels.Product {
	seen := make(map[string]struct{}, len(products))
	result := make([]catalogmodels.Product, 0, len(products))
	for _, p := range products {
		key := p.MoleculeName
		if key == "" {
			key = "productId:" + p.ProductID
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, p)
	}
	return result
}

// Create lưu file ảnh, cấp phát productId rồi insert document.
// Ảnh được ghi xong trước khi insert; insert lỗi thì xóa file vừa lưu.
func (s *ProductService) Create(ctx context.Context, product catalogmodels.Product, image *multipart.FileHeader) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	filename, err := s.storage.Save(image)
	if err != nil {
		return zero, err
	}
	product.ProductImage = "/upload/" + filename

	id, err := s.NextSequenceID(ctx, "productId", "productId")
	if err != nil {
		s.storage.Remove(filename)
		return zero, common.ConvertMongoError(err)
	}
	product.ProductID = id

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		s.storage.Remove(filename)
		return zero, err
	}

	s.InvalidateListCache()
	return created, nil
}

// Update cập nhật sản phẩm theo productId; image khác nil thì thay ảnh.
// File cũ chỉ bị xóa sau khi document update thành công; update lỗi thì
// file mới vừa ghi bị dọn và file cũ giữ nguyên.
func (s *ProductService) Update(ctx context.Context, productID string, update *basesvc.UpdateData, image *multipart.FileHeader) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	existing, err := s.FindOne(ctx, bson.M{"productId": productID}, nil)
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
		update.Set["productImage"] = "/upload/" + newFile
		oldFile = utility.UploadFileName(existing.ProductImage)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"productId": productID}, update, nil)
	if err != nil {
		s.storage.Remove(newFile)
		return zero, err
	}

	s.storage.Remove(oldFile)
	s.InvalidateListCache()
	return updated, nil
}

// SetActiveStatus bật/tắt trạng thái active của sản phẩm
func (s *ProductService) SetActiveStatus(ctx context.Context, productID string, active bool) (catalogmodels.Product, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": active}}
	updated, err := s.UpdateOne(ctx, bson.M{"productId": productID}, update, nil)
	if err != nil {
		return updated, err
	}
	s.InvalidateListCache()
	return updated, nil
}

// Delete xóa sản phẩm và file ảnh của nó. Document không tồn tại trả về
// ErrNotFound và không đụng tới file.
func (s *ProductService) Delete(ctx context.Context, productID string) error {
	existing, err := s.FindOne(ctx, bson.M{"productId": productID}, nil)
	if err != nil {
		return err
	}

	if err := s.DeleteOne(ctx, bson.M{"productId": productID}); err != nil {
		return err
	}

	s.storage.Remove(utility.UploadFileName(existing.ProductImage))
	s.InvalidateListCache()
	return nil
}

// InvalidateListCache xóa mọi cache entry của danh sách sản phẩm.
// Key chứa "allProducts" hoặc "page:" đều bị loại (giữ tương thích với
// các key danh sách không phân trang cũ).
func (s *ProductService) InvalidateListCache() {
	s.cache.InvalidateContaining("allProducts", "page:")
}

// Cache trả về cache instance của service (phục vụ test và debug)
func (s *ProductService) Cache() *utility.Cache {
	return s.cache
}
