package registrationstore

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/Angelaliii/SA2/config"
)

// FirebaseObjectStore là ObjectStore trên Firebase Storage (bucket GCS).
// Bucket handle do Firebase Admin SDK cung cấp, an toàn cho concurrent use.
type FirebaseObjectStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseObjectStore khởi tạo Firebase app và lấy default bucket.
// Credentials lấy từ FIREBASE_CREDENTIALS_PATH nếu có, ngược lại dùng
// Application Default Credentials (chạy trên GCP)
func NewFirebaseObjectStore(ctx context.Context, cfg *config.Configuration) (*FirebaseObjectStore, error) {
	if cfg.FirebaseStorageBucket == "" {
		return nil, fmt.Errorf("firebase storage bucket is not configured")
	}

	firebaseConfig := &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		StorageBucket: cfg.FirebaseStorageBucket,
	}

	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		if _, err := os.Stat(cfg.FirebaseCredentialsPath); err != nil {
			return nil, fmt.Errorf("firebase credentials file not found: %s", cfg.FirebaseCredentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default storage bucket: %w", err)
	}

	return &FirebaseObjectStore{
		bucket:     bucket,
		bucketName: cfg.FirebaseStorageBucket,
	}, nil
}

// Ready trả về true khi store có bucket handle sử dụng được
func (s *FirebaseObjectStore) Ready() bool {
	return s != nil && s.bucket != nil
}

// Upload đẩy file tại localPath lên bucket dưới key, mở public read
// và trả về public URL của object
func (s *FirebaseObjectStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	if !s.Ready() {
		return "", fmt.Errorf("object store is not initialized")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open local file: %w", err)
	}
	defer f.Close()

	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	// Mở public read cho object để frontend hiển thị trực tiếp
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to make object %s public: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}
