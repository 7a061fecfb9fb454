package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain/repository"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/utils"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// ListingUseCase - use case пользовательских объявлений
type ListingUseCase struct {
	listings repository.ListingRepository
	store    repository.SnapshotStore
	logger   *zap.Logger
}

// NewListingUseCase - создание нового ListingUseCase
func NewListingUseCase(
	listings repository.ListingRepository,
	store repository.SnapshotStore,
	logger *zap.Logger,
) *ListingUseCase {
	return &ListingUseCase{
		listings: listings,
		store:    store,
		logger:   logger,
	}
}

// Submit сохраняет новое объявление. Запись попадёт на карту
// на следующем цикле обновления снапшота.
func (uc *ListingUseCase) Submit(ctx context.Context, req dto.SubmitListingRequest) (*dto.SubmitListingResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	record := req.ToRecord()
	id, err := uc.listings.Insert(ctx, &record)
	if err != nil {
		uc.logger.Error("Failed to insert listing", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Listing submitted",
		zap.Int64("id", id),
		zap.String("category", record.Category))

	return &dto.SubmitListingResponse{ID: id}, nil
}

// List возвращает объявления, опционально сузив по категориям
func (uc *ListingUseCase) List(ctx context.Context, categories []string) ([]dto.ListingResponse, error) {
	var (
		records []domain.GeoRecord
		err     error
	)
	if len(categories) > 0 {
		records, err = uc.listings.ListByCategories(ctx, categories)
	} else {
		records, err = uc.listings.ListAll(ctx)
	}
	if err != nil {
		uc.logger.Error("Failed to list listings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	result := make([]dto.ListingResponse, 0, len(records))
	for _, r := range records {
		result = append(result, *toListingResponse(r))
	}
	return result, nil
}

// GetByID возвращает объявление для экрана деталей (навигация по MarkerTapped).
// Сначала ищем в текущем снапшоте, затем в базе объявлений.
func (uc *ListingUseCase) GetByID(ctx context.Context, id int64) (*dto.ListingResponse, error) {
	if snap := uc.store.Current(); snap != nil {
		for i := range snap.Records {
			if snap.Records[i].ID == id {
				return toListingResponse(snap.Records[i]), nil
			}
		}
	}

	if uc.listings == nil {
		return nil, errors.ErrListingNotFound
	}

	record, err := uc.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toListingResponse(*record), nil
}

func toListingResponse(r domain.GeoRecord) *dto.ListingResponse {
	return &dto.ListingResponse{
		Listing: r,
		Style:   domain.StyleFor(r.Status, r.IsPaid),
	}
}
