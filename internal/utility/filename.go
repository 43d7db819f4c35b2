// Package utility chứa các helper dùng chung, không gắn với domain cụ thể.
package utility

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeFilenameChars là các ký tự bị thay thế khi sanitize tên file
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename làm sạch tên file trước khi dùng trong storage key:
// bỏ thành phần đường dẫn và thay các ký tự không an toàn bằng "_".
// Chặn path traversal vào namespace của object store.
func SanitizeFilename(name string) string {
	// Bỏ đường dẫn (cả separator kiểu Windows)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	name = unsafeFilenameChars.ReplaceAllString(name, "_")

	// Không cho tên file bắt đầu bằng dấu chấm (file ẩn, "..")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "file"
	}
	return name
}

// FileExtension trả về phần mở rộng sau dấu chấm cuối cùng, lowercase,
// không kèm dấu chấm. Trả về "" nếu tên file không có phần mở rộng.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
