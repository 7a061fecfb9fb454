package domain

import "math"

// Максимальный уровень зума, используется при вырожденной дельте долготы
const MaxZoomLevel = 20

// Viewport - видимая область карты, приходит от рендерера
// на каждом pan/zoom жесте.
type Viewport struct {
	Center         LatLng  `json:"center"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Zoom вычисляет уровень зума из span долготы: round(log2(360/lngDelta))
func (v Viewport) Zoom() int {
	if v.LongitudeDelta <= 0 {
		return MaxZoomLevel
	}
	zoom := int(math.Round(math.Log2(360 / v.LongitudeDelta)))
	if zoom < 0 {
		return 0
	}
	if zoom > MaxZoomLevel {
		return MaxZoomLevel
	}
	return zoom
}

// BoundingBox - прямоугольная область карты
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Contains проверяет попадание точки в bbox (границы включительно)
func (b BoundingBox) Contains(p LatLng) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// ContainsAnyVertex проверяет, лежит ли хотя бы одна вершина полигона в bbox.
// Приближение box-пересечения: допустимы false positives у краёв,
// false negatives только когда ни одна вершина не попала внутрь.
func (b BoundingBox) ContainsAnyVertex(vertices []LatLng) bool {
	for _, v := range vertices {
		if b.Contains(v) {
			return true
		}
	}
	return false
}

// Bounds возвращает bbox вьюпорта, расширенный на padding долю span
// в каждую сторону. Padding прячет pop-in маркеров на краях при панорамировании.
func (v Viewport) Bounds(padding float64) BoundingBox {
	halfLat := v.LatitudeDelta / 2
	halfLng := v.LongitudeDelta / 2
	padLat := v.LatitudeDelta * padding
	padLng := v.LongitudeDelta * padding
	return BoundingBox{
		MinLat: v.Center.Lat - halfLat - padLat,
		MinLng: v.Center.Lng - halfLng - padLng,
		MaxLat: v.Center.Lat + halfLat + padLat,
		MaxLng: v.Center.Lng + halfLng + padLng,
	}
}
