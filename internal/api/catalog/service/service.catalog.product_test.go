package catalogsvc

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basemodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/models"
	catalogmodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/catalog/models"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/utility"
)

func TestBuildListCacheKey(t *testing.T) {
	tests := []struct {
		name string
		q    ProductListQuery
		want string
	}{
		{"chỉ phân trang", ProductListQuery{Page: 1, Limit: 20}, "page:1-limit:20"},
		{"có active", ProductListQuery{Page: 2, Limit: 10, ActiveRaw: "true"}, "page:2-limit:10-active:true"},
		{"active raw giữ nguyên", ProductListQuery{Page: 1, Limit: 20, ActiveRaw: "yes"}, "page:1-limit:20-active:yes"},
		{"có category", ProductListQuery{Page: 1, Limit: 20, Category: "Tablet"}, "page:1-limit:20-category:Tablet"},
		{"có search", ProductListQuery{Page: 1, Limit: 20, Search: "para"}, "page:1-limit:20-search:para"},
		{
			"đầy đủ theo thứ tự active-category-search",
			ProductListQuery{Page: 3, Limit: 5, ActiveRaw: "false", Category: "Syrup", Search: "col"},
			"page:3-limit:5-active:false-category:Syrup-search:col",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildListCacheKey(tt.q); got != tt.want {
				t.Errorf("BuildListCacheKey = %q, muốn %q", got, tt.want)
			}
		})
	}
}

func TestBuildListFilter(t *testing.T) {
	// Không filter thì trả về filter rỗng
	if got := buildListFilter(ProductListQuery{Page: 1, Limit: 20}); len(got) != 0 {
		t.Errorf("buildListFilter rỗng = %v, muốn bson.M{}", got)
	}

	// Giá trị active không phải "true" thì filter về false
	filter := buildListFilter(ProductListQuery{ActiveRaw: "yes"})
	if filter["active"] != false {
		t.Errorf("active filter = %v, muốn false", filter["active"])
	}
	filter = buildListFilter(ProductListQuery{ActiveRaw: "true"})
	if filter["active"] != true {
		t.Errorf("active filter = %v, muốn true", filter["active"])
	}

	// Search tạo điều kiện $or trên brandName và moleculeName
	filter = buildListFilter(ProductListQuery{Search: "para"})
	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("search filter $or = %v, muốn 2 điều kiện", filter["$or"])
	}
}

func TestBuildFuzzyPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"apc", "a.*p.*c"},
		{"a", "a"},
		{"", ""},
		// Ký tự đặc biệt regex phải được escape
		{"a+b", `a.*\+.*b`},
		{"50%", `5.*0.*%`},
	}
	for _, tt := range tests {
		if got := BuildFuzzyPattern(tt.query); got != tt.want {
			t.Errorf("BuildFuzzyPattern(%q) = %q, muốn %q", tt.query, got, tt.want)
		}
	}
}

func TestDedupeByMolecule(t *testing.T) {
	products := []catalogmodels.Product{
		{ProductID: "productId0001", BrandName: "Paracip", MoleculeName: "Paracetamol"},
		{ProductID: "productId0002", BrandName: "Dolo", MoleculeName: "Paracetamol"},
		{ProductID: "productId0003", BrandName: "Azithral", MoleculeName: "Azithromycin"},
		{ProductID: "productId0004", BrandName: "NoMolecule"},
		{ProductID: "productId0005", BrandName: "AlsoNoMolecule"},
	}

	got := DedupeByMolecule(products)
	if len(got) != 4 {
		t.Fatalf("DedupeByMolecule trả về %d sản phẩm, muốn 4", len(got))
	}

	// Giữ sản phẩm đầu tiên của mỗi hoạt chất
	if got[0].ProductID != "productId0001" {
		t.Errorf("sản phẩm đầu = %s, muốn productId0001", got[0].ProductID)
	}
	// Sản phẩm không có hoạt chất không bị gộp với nhau
	seen := map[string]bool{}
	for _, p := range got {
		seen[p.ProductID] = true
	}
	if !seen["productId0004"] || !seen["productId0005"] {
		t.Errorf("sản phẩm không có hoạt chất bị gộp nhầm: %v", got)
	}
	if seen["productId0002"] {
		t.Errorf("sản phẩm trùng hoạt chất không bị loại: %v", got)
	}
}

func TestFindPageServesFromCache(t *testing.T) {
	cache := utility.NewCache(time.Minute, time.Minute)
	t.Cleanup(cache.Stop)

	// Base service để nil: FindPage mà chạm tới store sẽ panic thay vì trả cache
	svc := &ProductService{cache: cache}

	q := ProductListQuery{Page: 1, Limit: 20}
	want := &basemodels.PaginateResult[catalogmodels.Product]{
		Page:           1,
		TotalPages:     3,
		TotalDocuments: 45,
		Data:           []catalogmodels.Product{{ProductID: "productId0001"}},
	}
	cache.Set(BuildListCacheKey(q), want)

	got, err := svc.FindPage(context.Background(), q)
	if err != nil {
		t.Fatalf("FindPage lỗi: %v", err)
	}
	if got != want {
		t.Errorf("FindPage = %+v, muốn entry lấy từ cache", got)
	}
}

func TestDedupeByMoleculeEmpty(t *testing.T) {
	if got := DedupeByMolecule(nil); len(got) != 0 {
		t.Errorf("DedupeByMolecule(nil) = %v, muốn rỗng", got)
	}
}
