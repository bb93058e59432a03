package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOMDBClient_GetRatings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "omdb-key" {
			t.Errorf("Request thiếu apikey")
		}
		if r.URL.Query().Get("i") != "tt0137523" {
			t.Errorf("Request sai imdb id: %q", r.URL.Query().Get("i"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Response":"True","Ratings":[{"Source":"Internet Movie Database","Value":"8.8/10"},{"Source":"Rotten Tomatoes","Value":"79%"}]}`)
	}))
	defer srv.Close()

	c := NewOMDBClient(srv.URL, "omdb-key")
	ratings := c.GetRatings(context.Background(), "tt0137523")
	if len(ratings) != 2 {
		t.Fatalf("GetRatings trả về %d ratings, muốn 2", len(ratings))
	}
	if ratings[0].Source != "Internet Movie Database" || ratings[0].Value != "8.8/10" {
		t.Errorf("Rating đầu tiên sai: %+v", ratings[0])
	}
}

func TestOMDBClient_GetRatings_Disabled(t *testing.T) {
	c := NewOMDBClient("http://127.0.0.1:1", "")
	if got := c.GetRatings(context.Background(), "tt0137523"); got != nil {
		t.Error("GetRatings phải trả về nil khi không có api key")
	}

	c = NewOMDBClient("http://127.0.0.1:1", "omdb-key")
	if got := c.GetRatings(context.Background(), ""); got != nil {
		t.Error("GetRatings phải trả về nil khi không có imdb id")
	}
}

func TestOMDBClient_GetRatings_FalseResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response":"False","Error":"Incorrect IMDb ID."}`)
	}))
	defer srv.Close()

	c := NewOMDBClient(srv.URL, "omdb-key")
	if got := c.GetRatings(context.Background(), "tt0000000"); got != nil {
		t.Error("GetRatings phải trả về nil khi OMDB trả Response=False")
	}
}

func TestOMDBClient_GetRatings_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewOMDBClient(srv.URL, "omdb-key")
	if got := c.GetRatings(context.Background(), "tt0137523"); got != nil {
		t.Error("GetRatings phải trả về nil khi OMDB trả lỗi HTTP")
	}
}
