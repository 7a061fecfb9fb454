package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/config"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// searchResult - элемент ответа Nominatim-совместимого геокодера
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
}

// NewClient создает клиент текстового поиска локаций
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Search выполняет текстовый поиск локаций через upstream-геокодер
func (c *client) Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d",
		c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geocoder request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("geocoder error: status %d", resp.StatusCode)
	}

	var raw []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]domain.GeocodeResult, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			c.logger.Warn("Skipping geocode result with bad coordinates",
				zap.String("name", r.DisplayName))
			continue
		}
		results = append(results, domain.GeocodeResult{
			Name:     r.DisplayName,
			Position: domain.LatLng{Lat: lat, Lng: lng},
			Type:     r.Type,
		})
	}

	return results, nil
}
