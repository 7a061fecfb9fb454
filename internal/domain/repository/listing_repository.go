package repository

import (
	"context"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// ListingRepository определяет методы хранения пользовательских объявлений.
// Эти записи подмешиваются в снапшот карты на каждом цикле обновления.
type ListingRepository interface {
	// Insert сохраняет новое объявление и возвращает его ID
	Insert(ctx context.Context, record *domain.GeoRecord) (int64, error)

	// GetByID возвращает объявление по ID
	GetByID(ctx context.Context, id int64) (*domain.GeoRecord, error)

	// ListAll возвращает все объявления для слияния со снапшотом
	ListAll(ctx context.Context) ([]domain.GeoRecord, error)

	// ListByCategories возвращает объявления заданных категорий
	ListByCategories(ctx context.Context, categories []string) ([]domain.GeoRecord, error)
}
