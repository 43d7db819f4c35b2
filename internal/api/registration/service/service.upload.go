package registrationsvc

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	registrationstore "github.com/Angelaliii/SA2/internal/api/registration/store"
	"github.com/Angelaliii/SA2/internal/logger"
	"github.com/Angelaliii/SA2/internal/utility"
)

// allowedExtensions là các phần mở rộng file được phép upload
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
}

// FileUploader đẩy file từ form multipart lên object store.
// Upload thất bại không bao giờ trả lỗi ra ngoài: caller nhận URL rỗng
// và bỏ qua trường đó, đăng ký vẫn tiếp tục.
type FileUploader struct {
	objects registrationstore.ObjectStore
	tempDir string
}

// NewFileUploader tạo FileUploader với object store và thư mục tạm cho trước
func NewFileUploader(objects registrationstore.ObjectStore, tempDir string) *FileUploader {
	if tempDir == "" {
		tempDir = "uploads"
	}
	return &FileUploader{objects: objects, tempDir: tempDir}
}

// Allowed kiểm tra phần mở rộng file (sau dấu chấm cuối, không phân biệt
// hoa thường) có nằm trong danh sách cho phép không
func (u *FileUploader) Allowed(filename string) bool {
	ext := utility.FileExtension(filename)
	return ext != "" && allowedExtensions[ext]
}

// Upload ghi file vào thư mục tạm, đẩy lên object store dưới key
// "<category>/<entityID>_<tên file đã sanitize>" rồi xóa file tạm.
// Trả về public URL, hoặc "" khi có bất kỳ lỗi nào (đã log ở mức operator
// có thể alert). File tạm luôn được dọn, kể cả đường lỗi.
func (u *FileUploader) Upload(ctx context.Context, fh *multipart.FileHeader, category, entityID string) string {
	log := logger.WithModule("registration").WithFields(map[string]interface{}{
		"category": category,
		"entityId": entityID,
		"filename": fh.Filename,
	})

	if u.objects == nil || !u.objects.Ready() {
		log.Warn("Object store is not initialized, skipping file upload")
		return ""
	}

	localPath, err := u.saveTemp(fh)
	if err != nil {
		log.WithError(err).Error("Failed to stage uploaded file")
		return ""
	}
	defer func() {
		if rmErr := os.Remove(localPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.WithError(rmErr).Warn("Failed to remove temporary upload file")
		}
	}()

	key := fmt.Sprintf("%s/%s_%s", category, entityID, utility.SanitizeFilename(fh.Filename))
	url, err := u.objects.Upload(ctx, localPath, key)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("Failed to upload file to object store")
		return ""
	}

	log.WithField("url", url).Info("File uploaded to object store")
	return url
}

// saveTemp ghi nội dung file multipart vào một file tạm và trả về đường dẫn
func (u *FileUploader) saveTemp(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(u.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload temp dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open multipart file: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(u.tempDir, "upload-*"+filepath.Ext(utility.SanitizeFilename(fh.Filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return dst.Name(), nil
}
