// Package router lắp toàn bộ route của ứng dụng lên fiber app.
// Route domain nằm trong router của từng domain, ở đây chỉ gom lại.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Angelaliii/SA2/internal/api/base/handler"
	registrationhdl "github.com/Angelaliii/SA2/internal/api/registration/handler"
	registrationrouter "github.com/Angelaliii/SA2/internal/api/registration/router"
)

// AppHandlers gom các handler cần thiết để dựng route.
// Handler được khởi tạo ở cmd/server để cùng chia sẻ store đã kết nối.
type AppHandlers struct {
	System       *basehdl.SystemHandler
	Registration *registrationhdl.RegistrationHandler
}

// SetupRoutes đăng ký tất cả route của ứng dụng
func SetupRoutes(app *fiber.App, handlers AppHandlers) {
	// Liveness endpoint, không nằm trong group api
	app.Get("/", handlers.System.HandleRoot)

	api := app.Group("/api")
	registrationrouter.Register(api, handlers.Registration)
}
