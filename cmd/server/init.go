package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Angelaliii/SA2/config"
	basehdl "github.com/Angelaliii/SA2/internal/api/base/handler"
	registrationhdl "github.com/Angelaliii/SA2/internal/api/registration/handler"
	registrationsvc "github.com/Angelaliii/SA2/internal/api/registration/service"
	registrationstore "github.com/Angelaliii/SA2/internal/api/registration/store"
	"github.com/Angelaliii/SA2/internal/database"
	"github.com/Angelaliii/SA2/internal/global"
)

// AppDeps gom các handler đã nối store, dùng để dựng route
type AppDeps struct {
	System       *basehdl.SystemHandler
	Registration *registrationhdl.RegistrationHandler
}

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initConfig()    // Khởi tạo cấu hình server
	initValidator() // Khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err) // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	global.ServerConfig = cfg
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo validator (đăng ký các rule email_shape, business_id)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// initDocumentStore kết nối MongoDB và tạo các collection nếu chưa có.
// Kết nối thất bại trả về store chưa sẵn sàng thay vì làm chết tiến trình
func initDocumentStore(cfg *config.Configuration) registrationstore.DocumentStore {
	client, err := database.GetInstance(cfg)
	if err != nil {
		logrus.Errorf("Failed to connect to MongoDB, running in degraded mode: %v", err)
		return registrationstore.NewMongoDocumentStore(nil, cfg.MongoDB_DBName)
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	collections := []string{global.ColNames.Clubs, global.ColNames.Companies}
	if err := database.EnsureCollections(client, cfg.MongoDB_DBName, collections); err != nil {
		logrus.Errorf("Failed to ensure collections: %v", err)
	}

	return registrationstore.NewMongoDocumentStore(client, cfg.MongoDB_DBName)
}

// initObjectStore khởi tạo Firebase Storage.
// Config thiếu hoặc init lỗi trả về nil, upload sẽ bị bỏ qua lúc runtime
func initObjectStore(cfg *config.Configuration) registrationstore.ObjectStore {
	if cfg.FirebaseProjectID == "" || cfg.FirebaseStorageBucket == "" {
		logrus.Warn("Firebase config is incomplete, file uploads will be skipped")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objects, err := registrationstore.NewFirebaseObjectStore(ctx, cfg)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase Storage, file uploads will be skipped: %v", err)
		return nil
	}

	logrus.Info("Firebase Storage initialized successfully")
	return objects
}

// InitAppDeps dựng chuỗi store → service → handler cho toàn ứng dụng
func InitAppDeps() AppDeps {
	cfg := global.ServerConfig

	documents := initDocumentStore(cfg)
	objects := initObjectStore(cfg)

	service := registrationsvc.NewRegistrationService(documents, objects, cfg.UploadTempDir)

	return AppDeps{
		System:       basehdl.NewSystemHandler(),
		Registration: registrationhdl.NewRegistrationHandler(service),
	}
}
