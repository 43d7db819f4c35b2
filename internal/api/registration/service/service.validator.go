// Package registrationsvc chứa service cho domain Registration:
// validator, file uploader và pipeline đăng ký.
package registrationsvc

import (
	registrationmodels "github.com/Angelaliii/SA2/internal/api/registration/models"
	"github.com/Angelaliii/SA2/internal/global"
)

// ValidateSubmission kiểm tra fields theo cấu hình kind.
// Trả về (true, nil) khi hợp lệ, ngược lại (false, danh sách lỗi theo thứ tự).
//
// Các trường bắt buộc được kiểm tra trước, theo đúng thứ tự khai báo.
// Thiếu trường bắt buộc thì dừng luôn, các rule định dạng chỉ chạy
// khi đủ trường (chính sách short-circuit, để form hiện lỗi theo từng bước).
func ValidateSubmission(kind registrationmodels.KindConfig, fields map[string]string) (bool, []string) {
	var errs []string

	for _, name := range kind.RequiredFields {
		if fields[name] == "" {
			errs = append(errs, "missing required field: "+name)
		}
	}
	if len(errs) > 0 {
		return false, errs
	}

	validate := global.GetValidate()
	for _, rule := range kind.FormatRules {
		if err := validate.Var(fields[rule.Field], rule.Tag); err != nil {
			errs = append(errs, rule.Message)
		}
	}

	return len(errs) == 0, errs
}
