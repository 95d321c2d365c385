package cataloghdl

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/rebootAcc/jaimatadiphermabackend/internal/global"
)

// Body không phải {"active": bool} phải bị chặn với 400 trước khi chạm tới service
func TestHandleSetActiveStatusRejectsNonBoolean(t *testing.T) {
	if global.Validate == nil {
		global.InitValidator()
	}

	h := &ProductHandler{}
	app := fiber.New()
	app.Patch("/products/:id/active", h.HandleSetActiveStatus)

	tests := []struct {
		name string
		body string
	}{
		{"giá trị chuỗi", `{"active":"yes"}`},
		{"thiếu field", `{}`},
		{"body rỗng", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", "/products/productId0001/active", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request lỗi: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != 400 {
				t.Errorf("status = %d, muốn 400", resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), "isActive must be a boolean value") {
				t.Errorf("body = %s, muốn chứa message isActive must be a boolean value", body)
			}
		})
	}
}
