package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cine_catalog/internal/api/catalog/models"
	"cine_catalog/internal/logger"
)

// OMDBClient gọi OMDB API để lấy ratings bên ngoài (IMDb, Rotten Tomatoes...).
// Ratings là dữ liệu phụ: mọi lỗi đều được nuốt và trả về nil thay vì
// làm hỏng response chính.
type OMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// omdbResponse là response thô của OMDB
type omdbResponse struct {
	Response string          `json:"Response"`
	Error    string          `json:"Error"`
	Ratings  []models.Rating `json:"Ratings"`
}

// NewOMDBClient tạo client OMDB mới.
// apiKey rỗng nghĩa là tính năng ratings bị tắt.
func NewOMDBClient(baseURL string, apiKey string) *OMDBClient {
	if baseURL == "" {
		baseURL = "https://www.omdbapi.com"
	}
	return &OMDBClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetRatings lấy ratings theo imdbID.
// Trả về nil (không lỗi) khi: không có api key, không có imdbID,
// request thất bại hoặc OMDB trả Response != "True".
func (c *OMDBClient) GetRatings(ctx context.Context, imdbID string) []models.Rating {
	if c.apiKey == "" || imdbID == "" {
		return nil
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("imdb_id", imdbID).Warn("OMDB request failed, skipping ratings")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"imdb_id": imdbID,
			"status":  resp.StatusCode,
		}).Warn("OMDB returned non-200 status, skipping ratings")
		return nil
	}

	var body omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	if body.Response != "True" {
		return nil
	}
	return body.Ratings
}
