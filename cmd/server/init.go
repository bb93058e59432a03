package main

import (
	"context"

	"cine_catalog/config"
	authmodels "cine_catalog/internal/api/auth/models"
	catalogmodels "cine_catalog/internal/api/catalog/models"
	reviewmodels "cine_catalog/internal/api/review/models"
	"cine_catalog/internal/database"
	"cine_catalog/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Movies = "movies"
	global.MongoDB_ColNames.Series = "series"
	global.MongoDB_ColNames.Seasons = "seasons"
	global.MongoDB_ColNames.Reviews = "reviews"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo index tag trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Movies), catalogmodels.Movie{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Series), catalogmodels.Series{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Seasons), catalogmodels.Season{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Reviews), reviewmodels.Review{})
}
