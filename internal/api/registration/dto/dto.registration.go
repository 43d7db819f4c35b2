// Package registrationdto chứa DTO cho domain Registration.
// File: dto.registration.go
package registrationdto

import (
	registrationmodels "github.com/Angelaliii/SA2/internal/api/registration/models"
)

// SubmissionReceipt là kết quả trả về cho client sau khi đăng ký thành công.
// Chỉ gồm id, ngày đăng ký và trạng thái, không trả về toàn bộ record
type SubmissionReceipt struct {
	ID               string                    `json:"id"`
	RegistrationDate string                    `json:"registrationDate"`
	Status           registrationmodels.Status `json:"status"`
}

// StatusReport là kết quả tra cứu trạng thái duyệt theo id
type StatusReport struct {
	ID               string                    `json:"id"`
	RegistrationDate string                    `json:"registrationDate"`
	Status           registrationmodels.Status `json:"status"`
}

// ToResponseData chuyển receipt thành payload JSON với key id theo kind
// (clubId hoặc companyId)
func (r SubmissionReceipt) ToResponseData(kind registrationmodels.KindConfig) map[string]interface{} {
	return map[string]interface{}{
		kind.ResponseIDKey: r.ID,
		"registrationDate": r.RegistrationDate,
		"status":           r.Status,
	}
}

// ToResponseData chuyển status report thành payload JSON với key id theo kind
func (r StatusReport) ToResponseData(kind registrationmodels.KindConfig) map[string]interface{} {
	return map[string]interface{}{
		kind.ResponseIDKey: r.ID,
		"status":           r.Status,
		"registrationDate": r.RegistrationDate,
	}
}
