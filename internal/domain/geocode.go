package domain

// GeocodeResult - результат поиска локации по тексту
type GeocodeResult struct {
	Name       string  `json:"name"`
	Position   LatLng  `json:"position"`
	Type       string  `json:"type,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}
