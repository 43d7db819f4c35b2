// Package basehdl cung cấp các helper response và wrapper an toàn cho handler.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/Angelaliii/SA2/internal/common"
	"github.com/Angelaliii/SA2/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo UTF-8 encoding đúng cho các giá trị tiếng Trung trong form
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// Success trả về envelope thành công {success, message, data}.
// Message rỗng thì bị bỏ qua (status lookup không có message)
func Success(c fiber.Ctx, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if message != "" {
		body["message"] = message
	}
	return JSONResponse(c, common.StatusOK, body)
}

// Failure trả về envelope lỗi {success:false, message} kèm error detail nếu có.
// err là *common.Error thì dùng Message, StatusCode và Details của nó,
// ngược lại trả về internal server error với message chung.
func Failure(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{
			"success": false,
			"message": customErr.Message,
		}
		if customErr.Details != nil {
			body["error"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	body := fiber.Map{
		"success": false,
		"message": common.MsgInternalError,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, body)
}

// SafeHandlerWrapper bọc handler với recover: panic được bắt lại và
// chuyển thành response 500 chuẩn thay vì đổ stack trace ra client
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("panic", fmt.Sprintf("%v", r)).
				WithField("stack", string(debug.Stack())).
				Error("Panic recovered in handler")

			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"message": common.MsgInternalError,
			})
		}
	}()
	return fn()
}
