package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	apperrors "github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/repository/memory"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
)

// MockSourceRepository is a mock of SourceRepository
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) FetchProperties(ctx context.Context) ([]domain.RawProperty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawProperty), args.Error(1)
}

func (m *MockSourceRepository) FetchPlots(ctx context.Context) ([]domain.RawPlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPlot), args.Error(1)
}

// MockListingRepository is a mock of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Insert(ctx context.Context, record *domain.GeoRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.GeoRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoRecord), args.Error(1)
}

func (m *MockListingRepository) ListAll(ctx context.Context) ([]domain.GeoRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeoRecord), args.Error(1)
}

func (m *MockListingRepository) ListByCategories(ctx context.Context, categories []string) ([]domain.GeoRecord, error) {
	args := m.Called(ctx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeoRecord), args.Error(1)
}

func rawProperty(id int64, lat, lng float64) domain.RawProperty {
	return domain.RawProperty{
		PropertyID: ptrInt64(id),
		Geometry:   &domain.RawGeometry{X: ptrFloat64(lng), Y: ptrFloat64(lat)},
	}
}

func rawPlotAt(id int64, lat, lng float64) domain.RawPlot {
	return domain.RawPlot{
		ID: id,
		WKT: [][][]domain.RawXY{{{
			{X: lng, Y: lat},
			{X: lng + 0.001, Y: lat},
			{X: lng, Y: lat + 0.001},
		}}},
	}
}

func TestMapDataUseCase_RefreshSnapshot(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	params := testCullParams()

	t.Run("both sources succeed", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		mockSource.On("FetchProperties", ctx).Return([]domain.RawProperty{
			rawProperty(1, 31.5, 74.3),
			rawProperty(2, 31.51, 74.31),
		}, nil)
		mockSource.On("FetchPlots", ctx).Return([]domain.RawPlot{
			rawPlotAt(10, 31.5, 74.3),
		}, nil)
		mockCache.On("SetSnapshot", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		snap, err := uc.RefreshSnapshot(ctx)

		assert.NoError(t, err)
		assert.Len(t, snap.Records, 2)
		assert.Len(t, snap.Parcels, 1)
		assert.False(t, snap.Partial)
		assert.Same(t, snap, store.Current())
	})

	t.Run("one source failing keeps stale side", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		store.Set(&domain.Snapshot{
			Records: []domain.GeoRecord{{ID: 99}},
			Parcels: []domain.ParcelPolygon{{ID: 77}},
		})

		mockSource.On("FetchProperties", ctx).Return([]domain.RawProperty{
			rawProperty(1, 31.5, 74.3),
		}, nil)
		mockSource.On("FetchPlots", ctx).Return(nil, errors.New("upstream down"))
		mockCache.On("SetSnapshot", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		snap, err := uc.RefreshSnapshot(ctx)

		assert.NoError(t, err)
		assert.True(t, snap.Partial)
		assert.Len(t, snap.Records, 1, "fresh side replaced")
		assert.Equal(t, int64(77), snap.Parcels[0].ID, "failed side kept from previous snapshot")
	})

	t.Run("both sources failing without previous snapshot", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		mockSource.On("FetchProperties", ctx).Return(nil, errors.New("down"))
		mockSource.On("FetchPlots", ctx).Return(nil, errors.New("down"))

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		snap, err := uc.RefreshSnapshot(ctx)

		assert.Nil(t, snap)
		assert.ErrorIs(t, err, apperrors.ErrFetchFailure)
		assert.Nil(t, store.Current())
	})

	t.Run("both sources failing keeps previous snapshot", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		prev := &domain.Snapshot{Records: []domain.GeoRecord{{ID: 99}}}
		store.Set(prev)

		mockSource.On("FetchProperties", ctx).Return(nil, errors.New("down"))
		mockSource.On("FetchPlots", ctx).Return(nil, errors.New("down"))

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		snap, err := uc.RefreshSnapshot(ctx)

		assert.NoError(t, err)
		assert.Same(t, prev, snap)
	})

	t.Run("submitted listings merged into snapshot", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		mockListings := &MockListingRepository{}
		store := memory.NewSnapshotStore()

		mockSource.On("FetchProperties", ctx).Return([]domain.RawProperty{
			rawProperty(1, 31.5, 74.3),
		}, nil)
		mockSource.On("FetchPlots", ctx).Return([]domain.RawPlot{}, nil)
		mockListings.On("ListAll", ctx).Return([]domain.GeoRecord{
			{ID: 1001, Position: domain.LatLng{Lat: 31.52, Lng: 74.32}},
		}, nil)
		mockCache.On("SetSnapshot", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewMapDataUseCase(mockSource, mockListings, mockCache, store, logger, params, time.Minute)

		snap, err := uc.RefreshSnapshot(ctx)

		assert.NoError(t, err)
		assert.Len(t, snap.Records, 2)
		assert.Equal(t, int64(1001), snap.Records[1].ID)
	})
}

func TestMapDataUseCase_Query(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	params := testCullParams()

	t.Run("full pipeline over warm snapshot", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		store.Set(&domain.Snapshot{
			Records: []domain.GeoRecord{
				{ID: 1, Position: domain.LatLng{Lat: 31.5, Lng: 74.3}, Category: domain.CategoryResidential, IsPaid: true},
				{ID: 2, Position: domain.LatLng{Lat: 31.5, Lng: 74.3}, Category: domain.CategoryCommercial},
				{ID: 3, Position: domain.LatLng{Lat: 45, Lng: 10}, Category: domain.CategoryResidential},
			},
			Parcels: []domain.ParcelPolygon{},
		})

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		state := domain.DefaultFilterState()
		state.Categories = []string{domain.CategoryResidential}

		resp, err := uc.Query(ctx, state, cityViewport())

		assert.NoError(t, err)
		assert.Len(t, resp.Markers, 1, "record 2 filtered out, record 3 culled")
		assert.Equal(t, int64(1), resp.Markers[0].ID)
		assert.Equal(t, 14, resp.Zoom)
		assert.False(t, resp.Truncated)
		mockSource.AssertNotCalled(t, "FetchProperties")
	})

	t.Run("inverted price range rejected", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()
		store.Set(&domain.Snapshot{})

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		state := domain.DefaultFilterState()
		state.PriceRange = &domain.PriceRange{Min: 100, Max: 50}

		resp, err := uc.Query(ctx, state, cityViewport())

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPriceRange)
	})

	t.Run("cold start falls back to cached snapshot", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		cached := &domain.Snapshot{
			Records: []domain.GeoRecord{
				{ID: 5, Position: domain.LatLng{Lat: 31.5, Lng: 74.3}},
			},
		}
		mockCache.On("GetSnapshot", ctx).Return(cached, nil)

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		resp, err := uc.Query(ctx, domain.DefaultFilterState(), cityViewport())

		assert.NoError(t, err)
		assert.Len(t, resp.Markers, 1)
		assert.Same(t, cached, store.Current(), "cache promoted to memory store")
		mockSource.AssertNotCalled(t, "FetchProperties")
	})

	t.Run("cold start with empty cache triggers refresh", func(t *testing.T) {
		mockSource := &MockSourceRepository{}
		mockCache := &MockCacheRepository{}
		store := memory.NewSnapshotStore()

		mockCache.On("GetSnapshot", ctx).Return(nil, nil)
		mockSource.On("FetchProperties", ctx).Return([]domain.RawProperty{
			rawProperty(1, 31.5, 74.3),
		}, nil)
		mockSource.On("FetchPlots", ctx).Return([]domain.RawPlot{}, nil)
		mockCache.On("SetSnapshot", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewMapDataUseCase(mockSource, nil, mockCache, store, logger, params, time.Minute)

		resp, err := uc.Query(ctx, domain.DefaultFilterState(), cityViewport())

		assert.NoError(t, err)
		assert.Len(t, resp.Markers, 1)
	})
}

func TestMapDataUseCase_Stats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	store := memory.NewSnapshotStore()
	store.Set(&domain.Snapshot{
		Records: []domain.GeoRecord{
			{ID: 1, Category: domain.CategoryResidential, Status: ptrString(domain.StatusNew), IsPaid: true},
			{ID: 2, Category: domain.CategoryResidential, Status: nil},
			{ID: 3, Category: domain.CategoryCommercial, Status: ptrString(domain.StatusNew)},
		},
		Parcels: []domain.ParcelPolygon{{ID: 10}},
	})

	uc := usecase.NewMapDataUseCase(&MockSourceRepository{}, nil, &MockCacheRepository{}, store, logger, testCullParams(), time.Minute)

	stats, err := uc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 1, stats.TotalParcels)
	assert.Equal(t, 2, stats.ByCategory[domain.CategoryResidential])
	assert.Equal(t, 2, stats.ByStatus[domain.StatusNew])
	assert.Equal(t, 1, stats.ByStatus[domain.FilterNone])
	assert.Equal(t, 1, stats.PaidCount)
	assert.Equal(t, 2, stats.UnpaidCount)
}
