// Package registrationstore định nghĩa hai collaborator bên ngoài của pipeline
// đăng ký: document store (bản ghi) và object store (file upload).
// Implementations thật là MongoDB và Firebase Storage; bản in-memory dùng cho test.
// Store được inject vào service lúc khởi tạo, không dùng singleton toàn cục.
package registrationstore

import "context"

// DocumentStore là client của document database: collection chứa các document
// được định danh bằng string id. Client dùng chung cho nhiều request đồng thời.
type DocumentStore interface {
	// Ready cho biết store đã được khởi tạo và sẵn sàng phục vụ chưa
	Ready() bool

	// Insert ghi document vào collection. Document phải tự mang id của nó.
	Insert(ctx context.Context, collection string, doc interface{}) error

	// FindByID đọc document theo id và decode vào out.
	// Trả về common.ErrNotFound khi không có document
	FindByID(ctx context.Context, collection, id string, out interface{}) error
}

// ObjectStore là client của blob storage: upload file theo key,
// đối tượng được mở public và trả về public URL.
type ObjectStore interface {
	// Ready cho biết store đã được khởi tạo và sẵn sàng phục vụ chưa
	Ready() bool

	// Upload đẩy file tại localPath lên object store dưới key,
	// mở public access và trả về public URL của object
	Upload(ctx context.Context, localPath, key string) (string, error)
}
