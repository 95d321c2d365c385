package basehdl

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/common"
)

func TestIsDuplicateErrorFromMongoWriteError(t *testing.T) {
	// Lỗi unique index của driver (code 11000) phải được nhận diện là duplicate
	converted := common.ConvertMongoError(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	})
	if !IsDuplicateError(converted) {
		t.Errorf("lỗi duplicate key phải được nhận diện, nhận %v", converted)
	}

	if IsDuplicateError(common.ErrNotFound) {
		t.Error("ErrNotFound không phải duplicate")
	}
	if IsDuplicateError(nil) {
		t.Error("nil không phải duplicate")
	}
}

// Client nhận 400 với message theo tên entity khi tên đã tồn tại
func TestDuplicateNameErrorIsBadRequest(t *testing.T) {
	cause := common.ConvertMongoError(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	})
	err := DuplicateNameError("Product", cause)

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("DuplicateNameError phải trả *common.Error, nhận %T", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
	}
	want := "Product Name already exists. Please try another name."
	if appErr.Message != want {
		t.Errorf("message = %q, muốn %q", appErr.Message, want)
	}
}
