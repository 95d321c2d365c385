package displaysvc

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/models"
	basesvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/base/service"
	displaymodels "github.com/rebootAcc/jaimatadiphermabackend/internal/api/display/models"
	mediasvc "github.com/rebootAcc/jaimatadiphermabackend/internal/api/media/service"
	"github.com/rebootAcc/jaimatadiphermabackend/internal/utility"
)

// fakePopupStore ghi lại thứ tự các lời gọi tới store để kiểm tra
// hành vi của PopupService mà không cần MongoDB thật
type fakePopupStore struct {
	calls          []string
	existing       displaymodels.Popup
	updateOneErr   error
	lastManyFilter interface{}
	lastManyUpdate interface{}
}

func (f *fakePopupStore) InsertOne(_ context.Context, data displaymodels.Popup) (displaymodels.Popup, error) {
	f.calls = append(f.calls, "InsertOne")
	return data, nil
}

func (f *fakePopupStore) FindOne(_ context.Context, _ interface{}, _ *options.FindOneOptions) (displaymodels.Popup, error) {
	f.calls = append(f.calls, "FindOne")
	return f.existing, nil
}

func (f *fakePopupStore) Find(_ context.Context, _ interface{}, _ *options.FindOptions) ([]displaymodels.Popup, error) {
	f.calls = append(f.calls, "Find")
	return []displaymodels.Popup{f.existing}, nil
}

func (f *fakePopupStore) UpdateOne(_ context.Context, _ interface{}, _ interface{}, _ *options.UpdateOptions) (displaymodels.Popup, error) {
	f.calls = append(f.calls, "UpdateOne")
	if f.updateOneErr != nil {
		return displaymodels.Popup{}, f.updateOneErr
	}
	return f.existing, nil
}

func (f *fakePopupStore) UpdateMany(_ context.Context, filter interface{}, update interface{}, _ *options.UpdateOptions) (int64, error) {
	f.calls = append(f.calls, "UpdateMany")
	f.lastManyFilter = filter
	f.lastManyUpdate = update
	return 1, nil
}

func (f *fakePopupStore) DeleteOne(_ context.Context, _ interface{}) error {
	f.calls = append(f.calls, "DeleteOne")
	return nil
}

func (f *fakePopupStore) FindOneAndUpdate(_ context.Context, _ interface{}, _ interface{}, _ *options.FindOneAndUpdateOptions) (displaymodels.Popup, error) {
	return f.existing, nil
}

func (f *fakePopupStore) CountDocuments(_ context.Context, _ interface{}) (int64, error) {
	return 0, nil
}

func (f *fakePopupStore) Distinct(_ context.Context, _ string, _ interface{}) ([]interface{}, error) {
	return nil, nil
}

func (f *fakePopupStore) Aggregate(_ context.Context, _ interface{}) ([]displaymodels.Popup, error) {
	return nil, nil
}

func (f *fakePopupStore) FindWithPagination(_ context.Context, _ interface{}, _, _ int64, _ *options.FindOptions) (*basemodels.PaginateResult[displaymodels.Popup], error) {
	return nil, nil
}

func (f *fakePopupStore) DocumentExists(_ context.Context, _ interface{}) (bool, error) {
	return false, nil
}

func (f *fakePopupStore) NextSequenceID(_ context.Context, _, prefix string) (string, error) {
	f.calls = append(f.calls, "NextSequenceID")
	return prefix + "0001", nil
}

func newTestPopupService(t *testing.T, store *fakePopupStore) *PopupService {
	t.Helper()
	storage, err := mediasvc.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("tạo storage: %v", err)
	}
	cache := utility.NewCache(time.Minute, time.Minute)
	t.Cleanup(cache.Stop)
	return &PopupService{BaseServiceMongo: store, cache: cache, storage: storage}
}

// makeUploadFile dựng một multipart.FileHeader có nội dung đọc được
func makeUploadFile(t *testing.T, field, name string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("image-bytes")); err != nil {
		t.Fatalf("ghi nội dung file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

func TestPopupSetActiveStatusDeactivatesOthersFirst(t *testing.T) {
	store := &fakePopupStore{existing: displaymodels.Popup{PopupID: "popupId0001"}}
	svc := newTestPopupService(t, store)

	if _, err := svc.SetActiveStatus(context.Background(), "popupId0001", true); err != nil {
		t.Fatalf("SetActiveStatus lỗi: %v", err)
	}

	want := []string{"UpdateMany", "UpdateOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Fatalf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}

	// Bước tắt hàng loạt chỉ đụng tới popup đang active
	filter, ok := store.lastManyFilter.(bson.M)
	if !ok || filter["active"] != true {
		t.Errorf("filter deactivate = %v, muốn bson.M{active: true}", store.lastManyFilter)
	}
	update, ok := store.lastManyUpdate.(*basesvc.UpdateData)
	if !ok || update.Set["active"] != false {
		t.Errorf("update deactivate = %v, muốn Set{active: false}", store.lastManyUpdate)
	}
}

func TestPopupSetActiveStatusFalseSkipsDeactivate(t *testing.T) {
	store := &fakePopupStore{existing: displaymodels.Popup{PopupID: "popupId0001"}}
	svc := newTestPopupService(t, store)

	if _, err := svc.SetActiveStatus(context.Background(), "popupId0001", false); err != nil {
		t.Fatalf("SetActiveStatus lỗi: %v", err)
	}

	want := []string{"UpdateOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}
}

func TestPopupCreateActiveDeactivatesOthersBeforeInsert(t *testing.T) {
	store := &fakePopupStore{}
	svc := newTestPopupService(t, store)
	image := makeUploadFile(t, "popupImage", "banner.png")

	created, err := svc.Create(context.Background(), displaymodels.Popup{PopupName: "Tet Sale", Active: true}, image)
	if err != nil {
		t.Fatalf("Create lỗi: %v", err)
	}

	want := []string{"NextSequenceID", "UpdateMany", "InsertOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}
	if created.PopupID != "popupId0001" {
		t.Errorf("popupId = %q, muốn popupId0001", created.PopupID)
	}
}

func TestPopupCreateInactiveSkipsDeactivate(t *testing.T) {
	store := &fakePopupStore{}
	svc := newTestPopupService(t, store)
	image := makeUploadFile(t, "popupImage", "banner.png")

	if _, err := svc.Create(context.Background(), displaymodels.Popup{PopupName: "Tet Sale"}, image); err != nil {
		t.Fatalf("Create lỗi: %v", err)
	}

	want := []string{"NextSequenceID", "InsertOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}
}

// Set active=true qua Update cũng phải tắt các popup khác trước,
// như đường PATCH active
func TestPopupUpdateActiveDeactivatesOthers(t *testing.T) {
	store := &fakePopupStore{existing: displaymodels.Popup{PopupID: "popupId0001"}}
	svc := newTestPopupService(t, store)

	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": true}}
	if _, err := svc.Update(context.Background(), "popupId0001", update, nil); err != nil {
		t.Fatalf("Update lỗi: %v", err)
	}

	want := []string{"FindOne", "UpdateMany", "UpdateOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}
}

func TestPopupUpdateInactiveSkipsDeactivate(t *testing.T) {
	store := &fakePopupStore{existing: displaymodels.Popup{PopupID: "popupId0001"}}
	svc := newTestPopupService(t, store)

	update := &basesvc.UpdateData{Set: map[string]interface{}{"active": false}}
	if _, err := svc.Update(context.Background(), "popupId0001", update, nil); err != nil {
		t.Fatalf("Update lỗi: %v", err)
	}

	want := []string{"FindOne", "UpdateOne"}
	if !reflect.DeepEqual(store.calls, want) {
		t.Errorf("thứ tự gọi store = %v, muốn %v", store.calls, want)
	}
}

// Update thay ảnh: file cũ chỉ bị xóa sau khi document update thành công
func TestPopupUpdateReplacesImageAfterWrite(t *testing.T) {
	store := &fakePopupStore{
		existing: displaymodels.Popup{PopupID: "popupId0001", PopupImage: "/upload/old.png"},
	}
	svc := newTestPopupService(t, store)

	oldPath, err := svc.storage.Path("old.png")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if err := os.WriteFile(oldPath, []byte("old"), 0o644); err != nil {
		t.Fatalf("tạo file cũ: %v", err)
	}

	image := makeUploadFile(t, "popupImage", "banner.png")
	update := &basesvc.UpdateData{Set: map[string]interface{}{"popupName": "Tet Sale"}}
	if _, err := svc.Update(context.Background(), "popupId0001", update, image); err != nil {
		t.Fatalf("Update lỗi: %v", err)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("file cũ phải bị xóa sau khi update thành công")
	}
	entries, err := os.ReadDir(svc.storage.Dir())
	if err != nil {
		t.Fatalf("đọc thư mục upload: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("thư mục upload còn %d file, muốn 1 (file mới)", len(entries))
	}
}

// Document update thất bại thì file cũ giữ nguyên, file mới vừa ghi bị dọn
func TestPopupUpdateKeepsOldImageWhenWriteFails(t *testing.T) {
	store := &fakePopupStore{
		existing:     displaymodels.Popup{PopupID: "popupId0001", PopupImage: "/upload/old.png"},
		updateOneErr: errors.New("write conflict"),
	}
	svc := newTestPopupService(t, store)

	oldPath, err := svc.storage.Path("old.png")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if err := os.WriteFile(oldPath, []byte("old"), 0o644); err != nil {
		t.Fatalf("tạo file cũ: %v", err)
	}

	image := makeUploadFile(t, "popupImage", "banner.png")
	update := &basesvc.UpdateData{Set: map[string]interface{}{"popupName": "Tet Sale"}}
	if _, err := svc.Update(context.Background(), "popupId0001", update, image); err == nil {
		t.Fatal("Update phải trả lỗi khi document update thất bại")
	}

	if _, err := os.Stat(oldPath); err != nil {
		t.Errorf("file cũ phải được giữ nguyên: %v", err)
	}
	entries, err := os.ReadDir(svc.storage.Dir())
	if err != nil {
		t.Fatalf("đọc thư mục upload: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("thư mục upload còn %d file, muốn 1 (chỉ file cũ)", len(entries))
	}
}
