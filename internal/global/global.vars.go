package global

import (
	"cine_catalog/config"
	"cine_catalog/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName lưu tên của các collection trong database
type MongoDB_CollectionName struct {
	Users   string
	Movies  string
	Series  string
	Seasons string
	Reviews string
}

var (
	// MongoDB_ServerConfig lưu cấu hình server (đọc từ file env)
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session lưu kết nối MongoDB dùng chung toàn ứng dụng
	MongoDB_Session *mongo.Client

	// MongoDB_ColNames lưu tên các collection của hệ thống
	MongoDB_ColNames MongoDB_CollectionName

	// RegistryCollections registry thread-safe chứa các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// Validate instance validator dùng chung (khởi tạo trong InitValidator)
	Validate *validator.Validate
)

// GetDB trả về database handle theo tên DB trong config
func GetDB() *mongo.Database {
	if MongoDB_Session == nil || MongoDB_ServerConfig == nil {
		return nil
	}
	return MongoDB_Session.Database(MongoDB_ServerConfig.MongoDB_DBName)
}
