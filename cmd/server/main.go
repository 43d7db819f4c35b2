package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Angelaliii/SA2/internal/global"
	"github.com/Angelaliii/SA2/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình level / format / output
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server trên main thread
func main_thread(handlers AppDeps) {
	app := InitFiberApp(handlers)

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator)
	InitGlobal()

	// Khởi tạo store và handler. Store lỗi không làm chết tiến trình,
	// server vẫn chạy ở chế độ degraded và trả lỗi 500 cho client
	deps := InitAppDeps()

	// Chạy Fiber server trên main thread
	main_thread(deps)
}
