package repository

import (
	"context"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// GeocoderRepository определяет методы текстового поиска локаций
type GeocoderRepository interface {
	// Search возвращает локации, подходящие под текстовый запрос
	Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error)
}
