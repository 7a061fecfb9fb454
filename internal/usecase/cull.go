package usecase

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// CullParams - параметры отсечения по вьюпорту
type CullParams struct {
	// ZoomThreshold - ниже этого зума не рендерим ничего:
	// тысячи маркеров на мелком масштабе бесполезны и дороги
	ZoomThreshold int
	// BatchSize - верхняя граница числа точек в одном render-наборе
	BatchSize int
	// PaddingFactor - доля span, на которую расширяется bbox
	// в каждую сторону (прячет pop-in на краях при панорамировании)
	PaddingFactor float64
}

// RenderSet - итоговый набор геометрии для рендера
type RenderSet struct {
	Points    []domain.GeoRecord
	Polygons  []domain.ParcelPolygon
	Truncated bool
}

// Cull отбирает геометрию, которую стоит рендерить в текущем вьюпорте.
// Точка проходит, если попадает в расширенный bbox; полигон - если
// хотя бы одна его вершина попадает. Точки обрезаются до BatchSize
// с сохранением входного порядка, полигоны не ограничиваются
// (их на порядки меньше).
func Cull(records []domain.GeoRecord, parcels []domain.ParcelPolygon, viewport domain.Viewport, params CullParams) RenderSet {
	if viewport.Zoom() < params.ZoomThreshold {
		return RenderSet{
			Points:   []domain.GeoRecord{},
			Polygons: []domain.ParcelPolygon{},
		}
	}

	bounds := viewport.Bounds(params.PaddingFactor)

	points := make([]domain.GeoRecord, 0, len(records))
	for i := range records {
		if bounds.Contains(records[i].Position) {
			points = append(points, records[i])
		}
	}

	truncated := false
	if params.BatchSize > 0 && len(points) > params.BatchSize {
		points = points[:params.BatchSize]
		truncated = true
	}

	polygons := make([]domain.ParcelPolygon, 0, len(parcels))
	for i := range parcels {
		if bounds.ContainsAnyVertex(parcels[i].Vertices) {
			polygons = append(polygons, parcels[i])
		}
	}

	return RenderSet{
		Points:    points,
		Polygons:  polygons,
		Truncated: truncated,
	}
}
