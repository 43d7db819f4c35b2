// Package logger bọc logrus cho toàn bộ ứng dụng: cấu hình qua environment,
// hỗ trợ ghi đồng thời ra stdout và file có rotation (lumberjack).
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger *logrus.Logger
	mu        sync.Mutex
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng DefaultConfig.
func Init(cfg *LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Tạo thư mục logs nếu cần ghi file
	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	appLogger = buildLogger(cfg)
	return nil
}

// GetAppLogger trả về application logger, tự init với cấu hình mặc định nếu chưa có
func GetAppLogger() *logrus.Logger {
	mu.Lock()
	if appLogger == nil {
		mu.Unlock()
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
		mu.Lock()
	}
	l := appLogger
	mu.Unlock()
	return l
}

// buildLogger tạo một logrus.Logger theo LogConfig
func buildLogger(cfg *LogConfig) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	// Log entries đi qua AsyncHook để không block request handling,
	// output chính của logger bị tắt để tránh ghi hai lần
	writers := outputWriters(cfg)
	l.SetOutput(io.Discard)
	l.AddHook(NewAsyncHookWithWriters(writers, 1000))

	return l
}

// outputWriters trả về danh sách writers theo cấu hình output
func outputWriters(cfg *LogConfig) []io.Writer {
	var writers []io.Writer
	if cfg.Output == "stdout" || cfg.Output == "both" {
		writers = append(writers, os.Stdout)
	}
	if cfg.Output == "file" || cfg.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogPath, cfg.AppFile),
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	return writers
}
