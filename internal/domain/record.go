package domain

import "time"

// Статусы подключения, приходящие из биллинговой системы.
// Любое другое значение считается неизвестным и рисуется цветом по умолчанию.
const (
	StatusInProgress   = "InProgress"
	StatusDisconnected = "Disconnected"
	StatusConflict     = "Conflict"
	StatusNew          = "New"
	StatusNotice       = "Notice"
)

// Категории объектов
const (
	CategoryResidential = "Residential"
	CategoryCommercial  = "Commercial"
)

// GeoRecord представляет точечный объект недвижимости на карте
type GeoRecord struct {
	ID          int64    `json:"id"`
	Position    LatLng   `json:"position"`
	Category    string   `json:"category"`
	Status      *string  `json:"status,omitempty"`
	IsPaid      bool     `json:"is_paid"`
	Price       float64  `json:"price"`
	Area        *float64 `json:"area,omitempty"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
}

// ParcelPolygon представляет границу земельного участка
// как упорядоченный список вершин (первая и последняя не обязаны совпадать).
type ParcelPolygon struct {
	ID       int64    `json:"id"`
	Label    string   `json:"label"`
	Vertices []LatLng `json:"vertices"`
}

// Snapshot - нормализованный набор данных карты за один цикл загрузки.
// Partial=true означает, что один из двух источников не ответил
// и соответствующая часть осталась от предыдущего цикла.
type Snapshot struct {
	Records   []GeoRecord     `json:"records"`
	Parcels   []ParcelPolygon `json:"parcels"`
	FetchedAt time.Time       `json:"fetched_at"`
	Partial   bool            `json:"partial"`
}

// Statistics - агрегаты по текущему снапшоту для дашбордов
type Statistics struct {
	TotalRecords int            `json:"total_records"`
	TotalParcels int            `json:"total_parcels"`
	ByCategory   map[string]int `json:"by_category"`
	ByStatus     map[string]int `json:"by_status"`
	PaidCount    int            `json:"paid_count"`
	UnpaidCount  int            `json:"unpaid_count"`
	FetchedAt    time.Time      `json:"fetched_at"`
	Partial      bool           `json:"partial"`
}
