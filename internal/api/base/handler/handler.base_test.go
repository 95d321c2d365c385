package basehdl

import "testing"

type testModel struct {
	CategoryID   string `bson:"categoryId"`
	CategoryName string `bson:"categoryName"`
	Active       bool   `bson:"active"`
	CreatedAt    int64  `bson:"createdAt"`
}

type testCreateInput struct {
	CategoryName string `json:"categoryName"`
	Active       *bool  `json:"active"`
}

type testUpdateInput struct {
	CategoryName *string `json:"categoryName"`
	Active       *bool   `json:"active"`
}

func TestTransformToModel(t *testing.T) {
	active := true
	input := testCreateInput{CategoryName: "Tablet", Active: &active}

	model, err := TransformToModel[testModel](&input)
	if err != nil {
		t.Fatalf("TransformToModel lỗi: %v", err)
	}
	if model.CategoryName != "Tablet" {
		t.Errorf("CategoryName = %q, muốn Tablet", model.CategoryName)
	}
	// Field pointer được deref khi gán
	if !model.Active {
		t.Error("Active = false, muốn true")
	}
	// Field không có trong input giữ zero value
	if model.CategoryID != "" {
		t.Errorf("CategoryID = %q, muốn rỗng", model.CategoryID)
	}
}

func TestTransformToModelNilPointer(t *testing.T) {
	input := testCreateInput{CategoryName: "Syrup"}

	model, err := TransformToModel[testModel](&input)
	if err != nil {
		t.Fatalf("TransformToModel lỗi: %v", err)
	}
	if model.Active {
		t.Error("pointer nil không được ghi đè zero value của model")
	}
}

func TestTransformToModelRejectsNonStruct(t *testing.T) {
	if _, err := TransformToModel[testModel]("not a struct"); err == nil {
		t.Error("TransformToModel phải trả lỗi khi input không phải struct")
	}
}

func TestBuildUpdateSet(t *testing.T) {
	name := "Capsule"
	active := false
	input := testUpdateInput{CategoryName: &name, Active: &active}

	update, err := BuildUpdateSet(&input)
	if err != nil {
		t.Fatalf("BuildUpdateSet lỗi: %v", err)
	}
	if len(update.Set) != 2 {
		t.Fatalf("Set có %d key, muốn 2: %v", len(update.Set), update.Set)
	}
	if update.Set["categoryName"] != "Capsule" {
		t.Errorf("Set[categoryName] = %v, muốn Capsule", update.Set["categoryName"])
	}
	// Pointer non-nil tới false vẫn phải được ghi (set false tường minh)
	if update.Set["active"] != false {
		t.Errorf("Set[active] = %v, muốn false", update.Set["active"])
	}
}

func TestBuildUpdateSetSkipsNil(t *testing.T) {
	update, err := BuildUpdateSet(&testUpdateInput{})
	if err != nil {
		t.Fatalf("BuildUpdateSet lỗi: %v", err)
	}
	if len(update.Set) != 0 {
		t.Errorf("input rỗng tạo ra Set không rỗng: %v", update.Set)
	}
}

func TestSetModelField(t *testing.T) {
	model := &testModel{}
	if err := SetModelField(model, "categoryId", "categoryId0007"); err != nil {
		t.Fatalf("SetModelField lỗi: %v", err)
	}
	if model.CategoryID != "categoryId0007" {
		t.Errorf("CategoryID = %q, muốn categoryId0007", model.CategoryID)
	}

	// Field không tồn tại
	if err := SetModelField(model, "unknownField", "x"); err == nil {
		t.Error("SetModelField phải trả lỗi khi không tìm thấy bson tag")
	}
	// Field không phải string
	if err := SetModelField(model, "active", "true"); err == nil {
		t.Error("SetModelField phải trả lỗi khi field không phải string")
	}
}
