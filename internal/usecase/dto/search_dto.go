package dto

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// GeocodeRequest - текстовый поиск локации
type GeocodeRequest struct {
	Query string `json:"query" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"gte=0,lte=50"`

	// Опциональный центр карты: результаты сортируются по удалению от него
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// GeocodeResponse - найденные локации
type GeocodeResponse struct {
	Results []domain.GeocodeResult `json:"results"`
	Total   int                    `json:"total"`
}
