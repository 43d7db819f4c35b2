package registrationsvc

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	registrationdto "github.com/Angelaliii/SA2/internal/api/registration/dto"
	registrationmodels "github.com/Angelaliii/SA2/internal/api/registration/models"
	registrationstore "github.com/Angelaliii/SA2/internal/api/registration/store"
	"github.com/Angelaliii/SA2/internal/common"
	"github.com/Angelaliii/SA2/internal/logger"
)

// RegistrationService là pipeline đăng ký dùng chung cho mọi kind:
// validate → sinh id → upload file → persist → trả receipt.
// Store được inject lúc khởi tạo để test thay bằng double được.
type RegistrationService struct {
	documents registrationstore.DocumentStore
	uploader  *FileUploader
}

// NewRegistrationService tạo RegistrationService với document store,
// object store và thư mục tạm cho file upload
func NewRegistrationService(documents registrationstore.DocumentStore, objects registrationstore.ObjectStore, tempDir string) *RegistrationService {
	return &RegistrationService{
		documents: documents,
		uploader:  NewFileUploader(objects, tempDir),
	}
}

// Register xử lý một submission đăng ký cho kind cho trước.
//
// Thứ tự các bước cố định: kiểm tra store sẵn sàng, trích fields từ form,
// validate, sinh id + registrationDate, upload các file slot (thất bại
// không chặn đăng ký), persist record. Lỗi trả về luôn là *common.Error
// để handler map thẳng sang HTTP response.
func (s *RegistrationService) Register(ctx context.Context, kind registrationmodels.KindConfig, form *multipart.Form) (*registrationdto.SubmissionReceipt, error) {
	log := logger.WithModule("registration").WithField("kind", kind.Kind)

	if s.documents == nil || !s.documents.Ready() {
		log.Error("Document store is not initialized, rejecting submission")
		return nil, common.ErrServiceUnavailable
	}

	fields := extractFields(kind, form.Value)
	cooperationFields := form.Value["cooperationFields"]
	if cooperationFields == nil {
		cooperationFields = []string{}
	}

	if ok, verrs := ValidateSubmission(kind, fields); !ok {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, verrs)
	}

	id := NewRegistrationID(kind.IDPrefix)
	registrationDate := time.Now().Format(time.RFC3339)

	record := registrationmodels.Record{
		ID:                id,
		CooperationFields: cooperationFields,
		RegistrationDate:  registrationDate,
		Status:            registrationmodels.StatusPending,
		Fields:            fields,
	}

	// Upload các file slot có trong submission. File có phần mở rộng không
	// được phép coi như không gửi; upload lỗi chỉ làm thiếu trường URL.
	var uploadedKeys []string
	for _, slot := range kind.FileSlots {
		fhs := form.File[slot.FormField]
		if len(fhs) == 0 {
			continue
		}
		fh := fhs[0]
		if fh == nil || fh.Filename == "" || !s.uploader.Allowed(fh.Filename) {
			continue
		}
		if url := s.uploader.Upload(ctx, fh, slot.Category, id); url != "" {
			record.Fields[slot.URLField] = url
			uploadedKeys = append(uploadedKeys, url)
		}
	}

	if err := s.documents.Insert(ctx, kind.Collection, record); err != nil {
		// Không xóa các file đã upload, chỉ log key để đối soát thủ công
		log.WithError(err).WithFields(map[string]interface{}{
			"id":           id,
			"orphanedUrls": uploadedKeys,
		}).Error("Failed to persist registration record")
		return nil, common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, common.StatusInternalServerError, err.Error())
	}

	log.WithField("id", id).Info("Registration record persisted")

	return &registrationdto.SubmissionReceipt{
		ID:               id,
		RegistrationDate: registrationDate,
		Status:           registrationmodels.StatusPending,
	}, nil
}

// Status tra cứu trạng thái duyệt của một bản ghi đăng ký theo id
func (s *RegistrationService) Status(ctx context.Context, kind registrationmodels.KindConfig, id string) (*registrationdto.StatusReport, error) {
	if id == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "missing id parameter", common.StatusBadRequest, nil)
	}

	if s.documents == nil || !s.documents.Ready() {
		return nil, common.ErrServiceUnavailable
	}

	var record registrationmodels.Record
	err := s.documents.FindByID(ctx, kind.Collection, id, &record)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "registration record not found", common.StatusNotFound, nil)
		}
		logger.WithModule("registration").WithError(err).WithField("id", id).Error("Failed to fetch registration status")
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "failed to fetch registration status", common.StatusInternalServerError, err.Error())
	}

	return &registrationdto.StatusReport{
		ID:               id,
		RegistrationDate: record.RegistrationDate,
		Status:           record.StatusOrUnknown(),
	}, nil
}

// NewRegistrationID sinh id dạng <PREFIX><YYYYMMDD><6-hex-uppercase>.
// 24 bit ngẫu nhiên mỗi ngày, xác suất trùng không đáng kể, không guard thêm
func NewRegistrationID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s%s%s",
		prefix,
		time.Now().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(u[:3])),
	)
}

// extractFields trích các trường của kind từ form values:
// field không có trong form nhận giá trị rỗng, field lạ bị bỏ qua
func extractFields(kind registrationmodels.KindConfig, values map[string][]string) map[string]string {
	fields := make(map[string]string)
	for _, name := range kind.FormFields() {
		if v, ok := values[name]; ok && len(v) > 0 {
			fields[name] = v[0]
		} else {
			fields[name] = ""
		}
	}
	return fields
}
