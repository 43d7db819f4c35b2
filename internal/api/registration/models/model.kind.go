package models

// FormatRule là một rule kiểm tra định dạng cho một trường:
// Tag là custom validation đã đăng ký với validator (global.InitValidator),
// Message là thông báo lỗi trả về cho form khi rule fail
type FormatRule struct {
	Field   string
	Tag     string
	Message string
}

// FileSlot mô tả một slot file trong form multipart:
// FormField là tên field trong form, Category là folder trên object store,
// URLField là tên trường URL được gắn vào record khi upload thành công
type FileSlot struct {
	FormField string
	Category  string
	URLField  string
}

// KindConfig cấu hình một loại đăng ký. Hai workflow club/company chỉ khác
// nhau ở dữ liệu trong struct này: pipeline xử lý là một, không nhân bản handler.
type KindConfig struct {
	Kind           string     // "club" hoặc "company"
	IDPrefix       string     // Prefix của ID sinh ra: CLUB / COMP
	Collection     string     // Collection trong document store
	ResponseIDKey  string     // Tên key chứa ID trong JSON response: clubId / companyId
	RequiredFields []string   // Các trường bắt buộc, theo đúng thứ tự kiểm tra
	OptionalFields []string   // Các trường tùy chọn được nhận từ form
	FormatRules    []FormatRule
	FileSlots      []FileSlot
	SuccessMessage string // Thông báo khi đăng ký thành công
}

// FormFields trả về toàn bộ tên trường (bắt buộc + tùy chọn) được trích từ form
func (k KindConfig) FormFields() []string {
	fields := make([]string, 0, len(k.RequiredFields)+len(k.OptionalFields))
	fields = append(fields, k.RequiredFields...)
	fields = append(fields, k.OptionalFields...)
	return fields
}

// ClubKind là cấu hình cho workflow đăng ký câu lạc bộ
var ClubKind = KindConfig{
	Kind:          "club",
	IDPrefix:      "CLUB",
	Collection:    "clubs",
	ResponseIDKey: "clubId",
	RequiredFields: []string{
		"clubName", "schoolName", "clubType",
		"contactName", "contactPhone", "email",
	},
	OptionalFields: []string{"clubDescription"},
	FormatRules: []FormatRule{
		{Field: "email", Tag: "email_shape", Message: "invalid email format"},
	},
	FileSlots: []FileSlot{
		{FormField: "logo", Category: "club_logos", URLField: "logoUrl"},
		{FormField: "clubCertificate", Category: "club_certificates", URLField: "clubCertificateUrl"},
	},
	SuccessMessage: "club registration submitted successfully",
}

// CompanyKind là cấu hình cho workflow đăng ký doanh nghiệp
var CompanyKind = KindConfig{
	Kind:          "company",
	IDPrefix:      "COMP",
	Collection:    "companies",
	ResponseIDKey: "companyId",
	RequiredFields: []string{
		"companyName", "businessId", "industryType",
		"contactName", "contactPhone", "email",
	},
	OptionalFields: []string{"companyDescription"},
	FormatRules: []FormatRule{
		{Field: "businessId", Tag: "business_id", Message: "invalid business ID: must be 8 digits"},
		{Field: "email", Tag: "email_shape", Message: "invalid email format"},
	},
	FileSlots: []FileSlot{
		{FormField: "logo", Category: "company_logos", URLField: "logoUrl"},
		{FormField: "businessCertificate", Category: "business_certificates", URLField: "businessCertificateUrl"},
	},
	SuccessMessage: "company registration submitted successfully",
}
