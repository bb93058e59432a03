package accountsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "cine_catalog/internal/api/auth/models"
	catalogmodels "cine_catalog/internal/api/catalog/models"
)

func TestBuildProfileView_PopulatesContent(t *testing.T) {
	movieID := primitive.NewObjectID()
	seriesID := primitive.NewObjectID()
	movie := catalogmodels.Movie{ID: movieID, TmdbID: 550, Title: "Fight Club"}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: "tester",
		Watchlist: []models.WatchlistEntry{
			{ID: primitive.NewObjectID(), ContentID: movieID, ContentType: catalogmodels.ContentTypeMovie, Progress: 40},
		},
		Favorites: []models.FavoriteEntry{
			{ID: primitive.NewObjectID(), ContentID: seriesID, ContentType: catalogmodels.ContentTypeSeries},
		},
	}

	resolve := func(contentType string, contentID primitive.ObjectID) interface{} {
		if contentType == catalogmodels.ContentTypeMovie && contentID == movieID {
			return movie
		}
		return nil
	}

	view := BuildProfileView(user, resolve)

	if view.Username != "tester" {
		t.Errorf("Username = %q, thông tin user phải được giữ nguyên", view.Username)
	}
	if len(view.Watchlist) != 1 {
		t.Fatalf("Watchlist có %d mục, muốn 1", len(view.Watchlist))
	}
	got, ok := view.Watchlist[0].Content.(catalogmodels.Movie)
	if !ok {
		t.Fatalf("Content phải là Movie, có %T", view.Watchlist[0].Content)
	}
	if got.Title != "Fight Club" {
		t.Errorf("Content.Title = %q", got.Title)
	}
	if view.Watchlist[0].Progress != 40 {
		t.Errorf("Progress = %d, mục gốc phải được giữ nguyên", view.Watchlist[0].Progress)
	}

	// Content đã bị xóa khỏi catalog: mục vẫn còn, content nil
	if len(view.Favorites) != 1 {
		t.Fatalf("Favorites có %d mục, muốn 1", len(view.Favorites))
	}
	if view.Favorites[0].Content != nil {
		t.Error("Content không resolve được phải là nil")
	}
	if view.Favorites[0].ContentID != seriesID {
		t.Error("Mục favorites gốc phải được giữ nguyên")
	}
}

func TestBuildProfileView_EmptyLists(t *testing.T) {
	view := BuildProfileView(models.User{Username: "empty"}, func(string, primitive.ObjectID) interface{} {
		t.Fatal("Resolver không được gọi với danh sách rỗng")
		return nil
	})

	if len(view.Watchlist) != 0 || len(view.Favorites) != 0 {
		t.Errorf("Danh sách rỗng phải cho view rỗng: %+v", view)
	}
}
