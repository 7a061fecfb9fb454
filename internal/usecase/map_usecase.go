package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// MapDataUseCase - use case пайплайна карты: загрузка, нормализация,
// фильтрация и отсечение по вьюпорту.
type MapDataUseCase struct {
	source   repository.SourceRepository
	listings repository.ListingRepository // nil, если база объявлений не подключена
	cache    repository.CacheRepository
	store    repository.SnapshotStore
	logger   *zap.Logger
	params   CullParams
	cacheTTL time.Duration

	refreshMu sync.Mutex
}

// NewMapDataUseCase - создание нового MapDataUseCase
func NewMapDataUseCase(
	source repository.SourceRepository,
	listings repository.ListingRepository,
	cache repository.CacheRepository,
	store repository.SnapshotStore,
	logger *zap.Logger,
	params CullParams,
	cacheTTL time.Duration,
) *MapDataUseCase {
	return &MapDataUseCase{
		source:   source,
		listings: listings,
		cache:    cache,
		store:    store,
		logger:   logger,
		params:   params,
		cacheTTL: cacheTTL,
	}
}

// RefreshSnapshot выполняет один цикл загрузки: два независимых запроса
// к upstream идут параллельно, между ними нет зависимости по порядку.
// Если один из источников упал, его сторона остаётся от предыдущего
// снапшота (Partial=true). Ошибка возвращается только когда упали оба
// и предыдущих данных нет - одна ошибка на цикл, не на запись.
func (uc *MapDataUseCase) RefreshSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	uc.refreshMu.Lock()
	defer uc.refreshMu.Unlock()

	var (
		wg       sync.WaitGroup
		rawProps []domain.RawProperty
		rawPlots []domain.RawPlot
		propsErr error
		plotsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rawProps, propsErr = uc.source.FetchProperties(ctx)
	}()
	go func() {
		defer wg.Done()
		rawPlots, plotsErr = uc.source.FetchPlots(ctx)
	}()
	wg.Wait()

	prev := uc.store.Current()

	if propsErr != nil && plotsErr != nil {
		uc.logger.Error("Both upstream fetches failed",
			zap.Error(propsErr),
			zap.NamedError("plots_error", plotsErr))
		if prev != nil {
			return prev, nil
		}
		return nil, errors.ErrFetchFailure
	}

	snap := &domain.Snapshot{
		FetchedAt: time.Now(),
	}

	if propsErr != nil {
		uc.logger.Warn("Properties fetch failed, keeping stale records", zap.Error(propsErr))
		snap.Partial = true
		if prev != nil {
			snap.Records = prev.Records
		} else {
			snap.Records = []domain.GeoRecord{}
		}
	} else {
		snap.Records = NormalizeProperties(rawProps)
		uc.logger.Debug("Properties normalized",
			zap.Int("raw", len(rawProps)),
			zap.Int("kept", len(snap.Records)))
	}

	if plotsErr != nil {
		uc.logger.Warn("Plots fetch failed, keeping stale parcels", zap.Error(plotsErr))
		snap.Partial = true
		if prev != nil {
			snap.Parcels = prev.Parcels
		} else {
			snap.Parcels = []domain.ParcelPolygon{}
		}
	} else {
		snap.Parcels = NormalizePlots(rawPlots)
	}

	// Подмешиваем пользовательские объявления из базы
	if uc.listings != nil {
		submitted, err := uc.listings.ListAll(ctx)
		if err != nil {
			uc.logger.Warn("Failed to load submitted listings", zap.Error(err))
		} else if len(submitted) > 0 {
			snap.Records = append(snap.Records, submitted...)
		}
	}

	uc.store.Set(snap)

	if err := uc.cache.SetSnapshot(ctx, snap, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache snapshot", zap.Error(err))
	}

	uc.logger.Info("Snapshot refreshed",
		zap.Int("records", len(snap.Records)),
		zap.Int("parcels", len(snap.Parcels)),
		zap.Bool("partial", snap.Partial))

	return snap, nil
}

// Query прогоняет текущий снапшот через фильтр и culler
// и возвращает render-набор для переданного вьюпорта.
func (uc *MapDataUseCase) Query(ctx context.Context, state domain.FilterState, viewport domain.Viewport) (*dto.MapDataResponse, error) {
	if state.PriceRange != nil && state.PriceRange.Min > state.PriceRange.Max {
		return nil, errors.ErrInvalidPriceRange
	}

	snap, err := uc.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(snap.Records, state)
	rendered := Cull(filtered, snap.Parcels, viewport, uc.params)

	markers := make([]dto.MarkerDTO, 0, len(rendered.Points))
	for _, r := range rendered.Points {
		markers = append(markers, dto.ConvertMarker(r))
	}
	polygons := make([]dto.PolygonDTO, 0, len(rendered.Polygons))
	for _, p := range rendered.Polygons {
		polygons = append(polygons, dto.ConvertPolygon(p))
	}

	return &dto.MapDataResponse{
		Markers:   markers,
		Polygons:  polygons,
		Zoom:      viewport.Zoom(),
		Truncated: rendered.Truncated,
	}, nil
}

// Stats возвращает агрегаты по текущему снапшоту
func (uc *MapDataUseCase) Stats(ctx context.Context) (*domain.Statistics, error) {
	snap, err := uc.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Statistics{
		TotalRecords: len(snap.Records),
		TotalParcels: len(snap.Parcels),
		ByCategory:   make(map[string]int),
		ByStatus:     make(map[string]int),
		FetchedAt:    snap.FetchedAt,
		Partial:      snap.Partial,
	}

	for i := range snap.Records {
		r := &snap.Records[i]
		stats.ByCategory[r.Category]++
		if r.Status != nil {
			stats.ByStatus[*r.Status]++
		} else {
			stats.ByStatus[domain.FilterNone]++
		}
		if r.IsPaid {
			stats.PaidCount++
		} else {
			stats.UnpaidCount++
		}
	}

	return stats, nil
}

// currentSnapshot возвращает снапшот из памяти, кеша или свежей загрузки
func (uc *MapDataUseCase) currentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if snap := uc.store.Current(); snap != nil {
		return snap, nil
	}

	// Холодный старт: пробуем кеш, затем upstream
	cached, err := uc.cache.GetSnapshot(ctx)
	if err != nil {
		uc.logger.Warn("Failed to read snapshot cache", zap.Error(err))
	}
	if cached != nil {
		uc.store.Set(cached)
		return cached, nil
	}

	snap, err := uc.RefreshSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, errors.ErrSnapshotUnavailable
	}
	return snap, nil
}
