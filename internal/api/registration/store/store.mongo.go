package registrationstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Angelaliii/SA2/internal/common"
)

// MongoDocumentStore là DocumentStore trên MongoDB.
// Client do cmd/server khởi tạo một lần và an toàn cho concurrent use.
type MongoDocumentStore struct {
	client *mongo.Client
	dbName string
}

// NewMongoDocumentStore tạo MongoDocumentStore trên client và database cho trước.
// client nil cho ra store ở trạng thái not-ready (kết nối lúc start thất bại)
func NewMongoDocumentStore(client *mongo.Client, dbName string) *MongoDocumentStore {
	return &MongoDocumentStore{client: client, dbName: dbName}
}

// Ready trả về true khi store có client sử dụng được
func (s *MongoDocumentStore) Ready() bool {
	return s != nil && s.client != nil
}

// Insert ghi document vào collection
func (s *MongoDocumentStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	if !s.Ready() {
		return common.ErrServiceUnavailable
	}
	_, err := s.client.Database(s.dbName).Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// FindByID đọc document theo _id và decode vào out
func (s *MongoDocumentStore) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	if !s.Ready() {
		return common.ErrServiceUnavailable
	}
	err := s.client.Database(s.dbName).Collection(collection).
		FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
