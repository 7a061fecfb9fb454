package domain

// Типы сообщений моста карты
const (
	EventMarkerTapped  = "markerTapped"
	EventRegionChanged = "regionChanged"
	EventRender        = "render"
)

// MapEvent - типизированное событие, пришедшее от рендерера карты
type MapEvent interface {
	EventType() string
}

// MarkerTapped - пользователь нажал на маркер;
// потребитель переходит на экран деталей по ID.
type MarkerTapped struct {
	ID int64 `json:"id"`
}

func (MarkerTapped) EventType() string { return EventMarkerTapped }

// RegionChanged - рендерер сообщил о смещении видимой области
type RegionChanged struct {
	Viewport Viewport `json:"viewport"`
}

func (RegionChanged) EventType() string { return EventRegionChanged }
