package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/utils"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// SearchUseCase - use case текстового поиска локаций.
// Ошибка геокодера никак не влияет на уже отрисованное состояние карты:
// она возвращается наружу, данные снапшота не трогаются.
type SearchUseCase struct {
	geocoder repository.GeocoderRepository
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	geocoder repository.GeocoderRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		geocoder: geocoder,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Geocode ищет локации по тексту. Результаты кешируются;
// при переданном центре карты сортируются по удалению от него.
func (uc *SearchUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	if req.Limit == 0 {
		req.Limit = 10
	}

	cacheKey := fmt.Sprintf("geocode:%s:%d", req.Query, req.Limit)

	results, ok := uc.fromCache(ctx, cacheKey)
	if !ok {
		var err error
		results, err = uc.geocoder.Search(ctx, req.Query, req.Limit)
		if err != nil {
			uc.logger.Error("Geocoder lookup failed",
				zap.String("query", req.Query),
				zap.Error(err))
			return nil, errors.ErrGeocodeFailure
		}
		uc.toCache(ctx, cacheKey, results)
	}

	if req.Lat != nil && req.Lng != nil {
		for i := range results {
			results[i].DistanceKm = utils.HaversineDistance(
				*req.Lat, *req.Lng,
				results[i].Position.Lat, results[i].Position.Lng,
			)
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}

	return &dto.GeocodeResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

func (uc *SearchUseCase) fromCache(ctx context.Context, key string) ([]domain.GeocodeResult, bool) {
	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.GeocodeResult
	if err := json.Unmarshal(data, &results); err != nil {
		uc.logger.Warn("Failed to unmarshal cached geocode results", zap.Error(err))
		return nil, false
	}
	return results, true
}

func (uc *SearchUseCase) toCache(ctx context.Context, key string, results []domain.GeocodeResult) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode results", zap.Error(err))
	}
}
