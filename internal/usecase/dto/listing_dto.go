package dto

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// SubmitListingRequest - заявка на добавление объявления
type SubmitListingRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Address     string   `json:"address" validate:"required,min=3,max=500"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required"`
	Status      *string  `json:"status,omitempty"`
	Price       float64  `json:"price" validate:"gte=0"`
	Area        *float64 `json:"area,omitempty"`
	Lat         float64  `json:"lat" validate:"lat"`
	Lng         float64  `json:"lng" validate:"lng"`
}

// SubmitListingResponse - результат добавления
type SubmitListingResponse struct {
	ID int64 `json:"id"`
}

// ListingResponse - детали объявления для экрана просмотра
type ListingResponse struct {
	Listing domain.GeoRecord   `json:"listing"`
	Style   domain.MarkerStyle `json:"style"`
}

// ToRecord преобразует заявку в доменную запись
func (r SubmitListingRequest) ToRecord() domain.GeoRecord {
	return domain.GeoRecord{
		Title:       r.Title,
		Address:     r.Address,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Price:       r.Price,
		Area:        r.Area,
		IsPaid:      r.Price > 0,
		Position:    domain.LatLng{Lat: r.Lat, Lng: r.Lng},
	}
}
