package global

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// emailShapeRegexp kiểm tra dạng local@domain.tld: local và domain không chứa
	// whitespace hoặc '@', phần cuối domain phân cách bằng dấu chấm
	emailShapeRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// businessIDRegexp kiểm tra mã số doanh nghiệp: đúng 8 chữ số ASCII
	businessIDRegexp = regexp.MustCompile(`^\d{8}$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("email_shape", validateEmailShape)
	_ = Validate.RegisterValidation("business_id", validateBusinessID)
}

// GetValidate trả về validator instance, tự init nếu chưa có (tiện cho test)
func GetValidate() *validator.Validate {
	if Validate == nil {
		InitValidator()
	}
	return Validate
}

// validateEmailShape kiểm tra email theo dạng local@domain.tld
func validateEmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegexp.MatchString(fl.Field().String())
}

// validateBusinessID kiểm tra mã số doanh nghiệp 8 chữ số
func validateBusinessID(fl validator.FieldLevel) bool {
	return businessIDRegexp.MatchString(fl.Field().String())
}
