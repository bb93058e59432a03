// Package accountsvc xử lý nghiệp vụ watchlist, favorites và tiến độ xem của user.
package accountsvc

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "cine_catalog/internal/api/auth/models"
)

// WatchlistContains kiểm tra content đã có trong watchlist chưa
func WatchlistContains(entries []models.WatchlistEntry, contentID primitive.ObjectID) bool {
	for _, entry := range entries {
		if entry.ContentID == contentID {
			return true
		}
	}
	return false
}

// FavoritesContains kiểm tra content đã có trong favorites chưa
func FavoritesContains(entries []models.FavoriteEntry, contentID primitive.ObjectID) bool {
	for _, entry := range entries {
		if entry.ContentID == contentID {
			return true
		}
	}
	return false
}

// NewWatchlistEntry tạo một mục watchlist mới với progress 0
func NewWatchlistEntry(contentID primitive.ObjectID, contentType string) models.WatchlistEntry {
	return models.WatchlistEntry{
		ID:          primitive.NewObjectID(),
		ContentID:   contentID,
		ContentType: contentType,
		Progress:    0,
		AddedAt:     time.Now().UnixMilli(),
	}
}

// NewFavoriteEntry tạo một mục favorites mới
func NewFavoriteEntry(contentID primitive.ObjectID, contentType string) models.FavoriteEntry {
	return models.FavoriteEntry{
		ID:          primitive.NewObjectID(),
		ContentID:   contentID,
		ContentType: contentType,
		AddedAt:     time.Now().UnixMilli(),
	}
}
