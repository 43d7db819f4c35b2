// Package registrationsvc - Test FileUploader: lọc phần mở rộng, dọn file tạm, lỗi upload.
package registrationsvc

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrationstore "github.com/Angelaliii/SA2/internal/api/registration/store"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	fhs := form.File["file"]
	require.Len(t, fhs, 1)
	return fhs[0]
}

func TestFileUploader_Allowed(t *testing.T) {
	u := NewFileUploader(nil, t.TempDir())

	assert.True(t, u.Allowed("logo.png"))
	assert.True(t, u.Allowed("scan.pdf"))
	assert.True(t, u.Allowed("photo.JPEG"))
	assert.True(t, u.Allowed("archive.tar.jpg")) // chỉ xét phần sau dấu chấm cuối

	assert.False(t, u.Allowed("malware.exe"))
	assert.False(t, u.Allowed("script.png.sh"))
	assert.False(t, u.Allowed("noextension"))
	assert.False(t, u.Allowed(""))
}

func TestFileUploader_UploadAndCleanup(t *testing.T) {
	objects := registrationstore.NewMemoryObjectStore()
	tempDir := t.TempDir()
	u := NewFileUploader(objects, tempDir)

	fh := makeFileHeader(t, "cert.pdf", "pdf-bytes")
	url := u.Upload(context.Background(), fh, "club_certificates", "CLUB20260829ABCDEF")

	assert.Equal(t, "https://storage.example.com/club_certificates/CLUB20260829ABCDEF_cert.pdf", url)

	data, ok := objects.Object("club_certificates/CLUB20260829ABCDEF_cert.pdf")
	require.True(t, ok)
	assert.Equal(t, "pdf-bytes", string(data))

	// File tạm phải được dọn sau khi upload xong
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileUploader_SanitizesFilenameInKey(t *testing.T) {
	objects := registrationstore.NewMemoryObjectStore()
	u := NewFileUploader(objects, t.TempDir())

	fh := makeFileHeader(t, "../weird name?.png", "png")
	url := u.Upload(context.Background(), fh, "club_logos", "CLUB20260829ABCDEF")

	assert.Equal(t, "https://storage.example.com/club_logos/CLUB20260829ABCDEF_weird_name_.png", url)
}

func TestFileUploader_UploadErrorReturnsEmptyAndCleansUp(t *testing.T) {
	objects := registrationstore.NewMemoryObjectStore()
	objects.UploadErr = errors.New("network down")
	tempDir := t.TempDir()
	u := NewFileUploader(objects, tempDir)

	fh := makeFileHeader(t, "logo.png", "png")
	url := u.Upload(context.Background(), fh, "club_logos", "CLUB20260829ABCDEF")

	assert.Equal(t, "", url)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "file tạm phải được dọn kể cả khi upload lỗi")
}

func TestFileUploader_StoreNotReady(t *testing.T) {
	objects := registrationstore.NewMemoryObjectStore()
	objects.NotReady = true
	u := NewFileUploader(objects, t.TempDir())

	fh := makeFileHeader(t, "logo.png", "png")
	assert.Equal(t, "", u.Upload(context.Background(), fh, "club_logos", "CLUB20260829ABCDEF"))
}

func TestFileUploader_NilObjectStore(t *testing.T) {
	u := NewFileUploader(nil, t.TempDir())

	fh := makeFileHeader(t, "logo.png", "png")
	assert.Equal(t, "", u.Upload(context.Background(), fh, "club_logos", "CLUB20260829ABCDEF"))
}
