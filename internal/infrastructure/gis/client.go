package gis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/config"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient    *http.Client
	propertiesURL string
	plotsURL      string
	logger        *zap.Logger
}

// NewClient создает клиент для upstream GIS endpoint'ов с данными карты.
// Клиент не ретраит: политика повторов принадлежит вызывающему циклу
// обновления, ошибка fetch терминальна для текущего цикла.
func NewClient(cfg *config.SourceConfig, logger *zap.Logger) repository.SourceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		propertiesURL: cfg.PropertiesURL,
		plotsURL:      cfg.PlotsURL,
		logger:        logger,
	}
}

// FetchProperties загружает сырой список объектов недвижимости
func (c *client) FetchProperties(ctx context.Context) ([]domain.RawProperty, error) {
	var properties []domain.RawProperty
	if err := c.fetchJSON(ctx, c.propertiesURL, &properties); err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}

	c.logger.Debug("Properties fetched", zap.Int("count", len(properties)))
	return properties, nil
}

// FetchPlots загружает сырой список земельных участков
func (c *client) FetchPlots(ctx context.Context) ([]domain.RawPlot, error) {
	var plots []domain.RawPlot
	if err := c.fetchJSON(ctx, c.plotsURL, &plots); err != nil {
		return nil, fmt.Errorf("fetch plots: %w", err)
	}

	c.logger.Debug("Plots fetched", zap.Int("count", len(plots)))
	return plots, nil
}

func (c *client) fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Upstream returned error",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
