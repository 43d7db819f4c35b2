package basehdl

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Angelaliii/SA2/internal/common"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleRoot là liveness probe ở GET /.
// Frontend và health checker dùng endpoint này để biết API đang chạy
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":  "ok",
		"message": "SA Platform API Server is running",
	})
}
