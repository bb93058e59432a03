// Package client - Test TMDB client với httptest server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cine_catalog/internal/common"
)

// newTMDBServer dựng httptest server trả JSON theo path, kiểm tra luôn api_key
func newTMDBServer(t *testing.T, routes map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("Request %s thiếu api_key", r.URL.Path)
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("Encode response lỗi: %v", err)
		}
	}))
}

func TestTMDBClient_Trending_DefaultWindow(t *testing.T) {
	srv := newTMDBServer(t, map[string]interface{}{
		"/trending/movie/week": TmdbPage{
			Page:    1,
			Results: []TmdbListItem{{ID: 550, Title: "Fight Club", MediaType: "movie"}},
		},
	})
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	page, err := c.Trending(context.Background(), "movie", "")
	if err != nil {
		t.Fatalf("Trending trả về lỗi: %v", err)
	}
	if len(page.Results) != 1 || page.Results[0].ID != 550 {
		t.Errorf("Trending trả về kết quả sai: %+v", page.Results)
	}
}

func TestTMDBClient_NotFound(t *testing.T) {
	srv := newTMDBServer(t, map[string]interface{}{})
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	_, err := c.Trending(context.Background(), "movie", "day")
	if err == nil {
		t.Fatal("Trending phải trả về lỗi khi TMDB trả 404")
	}
	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("Lỗi phải là *common.Error, có %T", err)
	}
	if appErr.StatusCode != common.StatusNotFound {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusNotFound)
	}
	if appErr.Message != "Content not found in TMDB" {
		t.Errorf("Message = %q", appErr.Message)
	}
}

func TestTMDBClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	_, err := c.SearchMulti(context.Background(), "fight club", 1)
	if err == nil {
		t.Fatal("SearchMulti phải trả về lỗi khi TMDB trả 500")
	}
	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("Lỗi phải là *common.Error, có %T", err)
	}
	if appErr.StatusCode != common.StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusInternalServerError)
	}
}

func TestTMDBClient_Discover_Params(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"page":1,"results":[]}`)
	}))
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	_, err := c.Discover(context.Background(), "movie", DiscoverOptions{
		WithGenres:     "18,53",
		Year:           1999,
		VoteAverageGte: 7.5,
	})
	if err != nil {
		t.Fatalf("Discover trả về lỗi: %v", err)
	}

	want := map[string]string{
		"sort_by":              "popularity.desc",
		"page":                 "1",
		"with_genres":          "18,53",
		"primary_release_year": "1999",
		"vote_average.gte":     "7.5",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("Query param %s = %q, muốn %q", k, gotQuery[k], v)
		}
	}

	// TV dùng first_air_date_year thay vì primary_release_year
	if _, err := c.Discover(context.Background(), "tv", DiscoverOptions{Year: 2005}); err != nil {
		t.Fatalf("Discover tv trả về lỗi: %v", err)
	}
	if gotQuery["first_air_date_year"] != "2005" {
		t.Errorf("first_air_date_year = %q, muốn %q", gotQuery["first_air_date_year"], "2005")
	}
	if _, ok := gotQuery["primary_release_year"]; ok {
		t.Error("Discover tv không được gửi primary_release_year")
	}
}

func TestTMDBClient_MovieDetails_Bundle(t *testing.T) {
	cast := make([]TmdbCastMember, 15)
	for i := range cast {
		cast[i] = TmdbCastMember{ID: int64(i + 1), Name: fmt.Sprintf("Actor %d", i+1)}
	}
	recs := make([]TmdbListItem, 20)
	for i := range recs {
		recs[i] = TmdbListItem{ID: int64(i + 100)}
	}

	srv := newTMDBServer(t, map[string]interface{}{
		"/movie/550":                 TmdbMovieDetails{ID: 550, Title: "Fight Club", Runtime: 139},
		"/movie/550/credits":         TmdbCredits{Cast: cast},
		"/movie/550/recommendations": TmdbPage{Results: recs},
		"/movie/550/external_ids":    TmdbExternalIDs{ImdbID: "tt0137523"},
	})
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	bundle, err := c.MovieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("MovieDetails trả về lỗi: %v", err)
	}

	if bundle.Details.Title != "Fight Club" {
		t.Errorf("Title = %q", bundle.Details.Title)
	}
	if bundle.ImdbID != "tt0137523" {
		t.Errorf("ImdbID = %q", bundle.ImdbID)
	}
	if len(bundle.Cast) != maxCastMembers {
		t.Errorf("Cast phải được cắt còn %d, có %d", maxCastMembers, len(bundle.Cast))
	}
	if len(bundle.Recommendations) != maxRecommendations {
		t.Errorf("Recommendations phải được cắt còn %d, có %d", maxRecommendations, len(bundle.Recommendations))
	}
}

func TestTMDBClient_SeasonDetails(t *testing.T) {
	srv := newTMDBServer(t, map[string]interface{}{
		"/tv/1396/season/1": TmdbSeasonDetails{
			SeasonNumber: 1,
			Name:         "Season 1",
			Episodes:     []TmdbEpisode{{ID: 62085, EpisodeNumber: 1, Name: "Pilot"}},
		},
	})
	defer srv.Close()

	c := NewTMDBClient(srv.URL, "test-key")
	season, err := c.SeasonDetails(context.Background(), 1396, 1)
	if err != nil {
		t.Fatalf("SeasonDetails trả về lỗi: %v", err)
	}
	if season.SeasonNumber != 1 || len(season.Episodes) != 1 {
		t.Errorf("SeasonDetails trả về dữ liệu sai: %+v", season)
	}
	if season.Episodes[0].Name != "Pilot" {
		t.Errorf("Episode name = %q", season.Episodes[0].Name)
	}
}
