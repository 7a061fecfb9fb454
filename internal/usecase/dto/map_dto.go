package dto

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// ViewportRequest - видимая область в запросе клиента
type ViewportRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	LatDelta float64 `json:"lat_delta" validate:"gt=0"`
	LngDelta float64 `json:"lng_delta" validate:"gt=0"`
}

// MapQueryRequest - полный запрос данных карты: фильтры + вьюпорт
type MapQueryRequest struct {
	Filters  domain.FilterState `json:"filters"`
	Viewport ViewportRequest    `json:"viewport" validate:"required"`
}

// MarkerDTO - маркер в формате, который принимает рендерер карты
type MarkerDTO struct {
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Color  string  `json:"color"`
	Icon   string  `json:"icon"`
	Label  string  `json:"label"`
	Price  float64 `json:"price"`
	IsPaid bool    `json:"is_paid"`
	Status *string `json:"status,omitempty"`
}

// PolygonDTO - полигон участка для рендерера
type PolygonDTO struct {
	ID          int64           `json:"id"`
	Label       string          `json:"label"`
	Vertices    []domain.LatLng `json:"vertices"`
	FillColor   string          `json:"fill_color"`
	StrokeColor string          `json:"stroke_color"`
}

// MapDataResponse - отфильтрованный и отсечённый render-набор
type MapDataResponse struct {
	Markers   []MarkerDTO  `json:"markers"`
	Polygons  []PolygonDTO `json:"polygons"`
	Zoom      int          `json:"zoom"`
	Truncated bool         `json:"truncated"`
}

// ConvertMarker преобразует GeoRecord в маркер со стилем по статусу
func ConvertMarker(r domain.GeoRecord) MarkerDTO {
	style := domain.StyleFor(r.Status, r.IsPaid)
	return MarkerDTO{
		ID:     r.ID,
		Lat:    r.Position.Lat,
		Lng:    r.Position.Lng,
		Color:  style.Color,
		Icon:   style.Icon,
		Label:  r.Title,
		Price:  r.Price,
		IsPaid: r.IsPaid,
		Status: r.Status,
	}
}

// ConvertPolygon преобразует ParcelPolygon в полигон рендерера
func ConvertPolygon(p domain.ParcelPolygon) PolygonDTO {
	return PolygonDTO{
		ID:          p.ID,
		Label:       p.Label,
		Vertices:    p.Vertices,
		FillColor:   domain.ParcelFillColor,
		StrokeColor: domain.ParcelStrokeColor,
	}
}

// ToViewport преобразует запрос в доменный Viewport
func (v ViewportRequest) ToViewport() domain.Viewport {
	return domain.Viewport{
		Center:         domain.LatLng{Lat: v.Lat, Lng: v.Lng},
		LatitudeDelta:  v.LatDelta,
		LongitudeDelta: v.LngDelta,
	}
}
