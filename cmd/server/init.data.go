package main

import (
	"context"

	authmodels "cine_catalog/internal/api/auth/models"
	authsvc "cine_catalog/internal/api/auth/service"
	"cine_catalog/internal/common"
	"cine_catalog/internal/global"
	"cine_catalog/internal/logger"
	"cine_catalog/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData tạo user admin mặc định từ env nếu chưa tồn tại.
// Không có ADMIN_EMAIL/ADMIN_PASSWORD thì bỏ qua bước seed.
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	ctx := context.Background()
	existing, err := userService.FindOne(ctx, bson.M{"email": cfg.AdminEmail}, nil)
	if err == nil {
		if !existing.IsAdmin() {
			log.Warnf("Seed user %s exists but is not admin, leaving as-is", cfg.AdminEmail)
		}
		return
	}
	if appErr, ok := err.(*common.Error); !ok || appErr.StatusCode != common.StatusNotFound {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}

	hashed, err := utility.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := authmodels.User{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  hashed,
		Role:      authmodels.RoleAdmin,
		Watchlist: []authmodels.WatchlistEntry{},
		Favorites: []authmodels.FavoriteEntry{},
	}
	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Infof("Seeded admin user %s (%s)", created.Username, created.ID.Hex())
}
