// Package models chứa model cho domain Registration (đăng ký câu lạc bộ / doanh nghiệp).
package models

// Status là trạng thái duyệt của một bản ghi đăng ký
type Status string

const (
	StatusPending  Status = "pending"  // Chờ duyệt (giá trị khởi tạo)
	StatusApproved Status = "approved" // Đã duyệt
	StatusRejected Status = "rejected" // Bị từ chối
	StatusUnknown  Status = "unknown"  // Bản ghi không có trường status
)

// Record là bản ghi đăng ký được persist vào document store.
// Các trường theo kind (clubName, companyName, ...) và các URL file upload
// nằm trong Fields và được inline thành document phẳng, giống hệt
// document mà frontend admin đọc trực tiếp.
type Record struct {
	ID                string            `bson:"_id" json:"id"`
	CooperationFields []string          `bson:"cooperationFields" json:"cooperationFields"`
	RegistrationDate  string            `bson:"registrationDate" json:"registrationDate"` // ISO-8601
	Status            Status            `bson:"status,omitempty" json:"status"`
	Fields            map[string]string `bson:",inline" json:"-"`
}

// StatusOrUnknown trả về status của record, mặc định "unknown"
// khi document được lưu không có trường status
func (r *Record) StatusOrUnknown() Status {
	if r.Status == "" {
		return StatusUnknown
	}
	return r.Status
}
