package common

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Response Messages
const (
	MsgSuccess            = "operation completed successfully"
	MsgBadRequest         = "invalid request"
	MsgNotFound           = "resource not found"
	MsgInternalError      = "internal server error"
	MsgServiceUnavailable = "service unavailable"
	MsgValidationError    = "registration data failed validation"
	MsgDatabaseError      = "database operation failed"
	MsgStoreNotReady      = "storage service is not initialized"
	MsgStoreNotReadyHint  = "backend service configuration error, contact the administrator"
)

// ErrorCode phân loại lỗi theo hệ thống mã chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	SubCategory string // Phân loại con (ví dụ: Input)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "unexpected internal error",
	}

	ErrCodeConfiguration = ErrorCode{
		Code:        "SYS_002",
		Category:    "System",
		SubCategory: "Configuration",
		Description: "external collaborator is not initialized",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "submitted data is invalid",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "required field missing or malformed",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "field value does not match the expected format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "document store error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "document store connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "document store read/write error",
	}

	// Storage Errors (STG_xxx)
	ErrCodeStorage = ErrorCode{
		Code:        "STG_001",
		Category:    "Storage",
		SubCategory: "Upload",
		Description: "object store upload error",
	}
)

// Error là cấu trúc lỗi chi tiết dùng trong toàn bộ ứng dụng
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is so sánh error với target theo Code và Message (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	ErrNotFound           = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrConnection         = NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, nil)
	ErrServiceUnavailable = NewError(ErrCodeConfiguration, MsgStoreNotReady, StatusInternalServerError, MsgStoreNotReadyHint)
)

// ConvertMongoError chuyển lỗi của mongo driver về taxonomy của ứng dụng.
// mongo.ErrNoDocuments trở thành ErrNotFound; timeout trở thành lỗi kết nối.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, err.Error())
	}
	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseQuery, "document already exists", StatusConflict, err.Error())
	}
	return NewError(ErrCodeDatabaseQuery, err.Error(), StatusInternalServerError, nil)
}
