// Package global giữ các biến dùng chung của process: cấu hình server,
// validator instance và tên các collection MongoDB.
package global

import (
	"github.com/go-playground/validator/v10"

	"github.com/Angelaliii/SA2/config"
)

// ServerConfig là cấu hình server được khởi tạo lúc start
var ServerConfig *config.Configuration

// Validate là validator instance dùng chung, khởi tạo qua InitValidator
var Validate *validator.Validate

// ColNames chứa tên các collection trong database
var ColNames = struct {
	Clubs     string
	Companies string
}{
	Clubs:     "clubs",
	Companies: "companies",
}
