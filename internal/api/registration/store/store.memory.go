package registrationstore

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Angelaliii/SA2/internal/common"
)

// MemoryDocumentStore là DocumentStore trong bộ nhớ, dùng làm test double.
// Document được round-trip qua BSON để giữ đúng semantics encode/decode của Mongo.
type MemoryDocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte

	// NotReady giả lập store chưa được khởi tạo
	NotReady bool

	// InsertErr nếu khác nil thì mọi Insert trả về lỗi này (giả lập lỗi ghi)
	InsertErr error
}

// NewMemoryDocumentStore tạo MemoryDocumentStore rỗng
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		collections: make(map[string]map[string][]byte),
	}
}

// Ready trả về true trừ khi NotReady được bật
func (s *MemoryDocumentStore) Ready() bool {
	return !s.NotReady
}

// Insert lưu document, dùng trường _id sau khi marshal làm key
func (s *MemoryDocumentStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	id, ok := m["_id"].(string)
	if !ok {
		return fmt.Errorf("document has no string _id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string][]byte)
	}
	s.collections[collection][id] = raw
	return nil
}

// FindByID đọc document theo id và decode vào out
func (s *MemoryDocumentStore) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	return bson.Unmarshal(raw, out)
}

// Count trả về số document trong collection
func (s *MemoryDocumentStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Raw trả về document đã lưu dưới dạng bson.M, kèm cờ tồn tại
func (s *MemoryDocumentStore) Raw(collection, id string) (bson.M, bool) {
	s.mu.RLock()
	raw, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// Put lưu trực tiếp một bson.M dưới id cho trước (seed dữ liệu test)
func (s *MemoryDocumentStore) Put(collection, id string, doc bson.M) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string][]byte)
	}
	s.collections[collection][id] = raw
	return nil
}

// MemoryObjectStore là ObjectStore trong bộ nhớ, dùng làm test double
type MemoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// NotReady giả lập store chưa được khởi tạo
	NotReady bool

	// UploadErr nếu khác nil thì mọi Upload trả về lỗi này (giả lập lỗi mạng)
	UploadErr error
}

// NewMemoryObjectStore tạo MemoryObjectStore rỗng
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string][]byte)}
}

// Ready trả về true trừ khi NotReady được bật
func (s *MemoryObjectStore) Ready() bool {
	return !s.NotReady
}

// Upload đọc file tại localPath, lưu theo key và trả về URL giả lập
func (s *MemoryObjectStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	if s.UploadErr != nil {
		return "", s.UploadErr
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return fmt.Sprintf("https://storage.example.com/%s", key), nil
}

// Object trả về nội dung object đã upload, kèm cờ tồn tại
func (s *MemoryObjectStore) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// Keys trả về danh sách key đã upload
func (s *MemoryObjectStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}
