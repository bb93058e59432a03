package accountsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "cine_catalog/internal/api/auth/models"
)

func TestWatchlistContains(t *testing.T) {
	target := primitive.NewObjectID()
	entries := []models.WatchlistEntry{
		{ID: primitive.NewObjectID(), ContentID: primitive.NewObjectID(), ContentType: "Movie"},
		{ID: primitive.NewObjectID(), ContentID: target, ContentType: "Series"},
	}

	if !WatchlistContains(entries, target) {
		t.Error("WatchlistContains phải tìm thấy content đã có trong danh sách")
	}
	if WatchlistContains(entries, primitive.NewObjectID()) {
		t.Error("WatchlistContains phải trả về false với content chưa có")
	}
	if WatchlistContains(nil, target) {
		t.Error("WatchlistContains phải trả về false với danh sách rỗng")
	}
}

func TestFavoritesContains(t *testing.T) {
	target := primitive.NewObjectID()
	entries := []models.FavoriteEntry{
		{ID: primitive.NewObjectID(), ContentID: target, ContentType: "Movie"},
	}

	if !FavoritesContains(entries, target) {
		t.Error("FavoritesContains phải tìm thấy content đã có trong danh sách")
	}
	if FavoritesContains(entries, primitive.NewObjectID()) {
		t.Error("FavoritesContains phải trả về false với content chưa có")
	}
}

func TestNewWatchlistEntry(t *testing.T) {
	contentID := primitive.NewObjectID()
	entry := NewWatchlistEntry(contentID, "Movie")

	if entry.ID.IsZero() {
		t.Error("Entry mới phải có ID riêng")
	}
	if entry.ContentID != contentID {
		t.Errorf("ContentID = %v, muốn %v", entry.ContentID, contentID)
	}
	if entry.ContentType != "Movie" {
		t.Errorf("ContentType = %q", entry.ContentType)
	}
	if entry.Progress != 0 {
		t.Errorf("Entry mới phải có progress 0, có %d", entry.Progress)
	}
	if entry.AddedAt <= 0 {
		t.Error("AddedAt phải được gán timestamp")
	}
}

func TestNewFavoriteEntry(t *testing.T) {
	contentID := primitive.NewObjectID()
	entry := NewFavoriteEntry(contentID, "Series")

	if entry.ID.IsZero() {
		t.Error("Entry mới phải có ID riêng")
	}
	if entry.ContentID != contentID || entry.ContentType != "Series" {
		t.Errorf("Entry sai: %+v", entry)
	}
	if entry.AddedAt <= 0 {
		t.Error("AddedAt phải được gán timestamp")
	}
}
