package usecase

import (
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
)

// NormalizeProperties преобразует сырые объекты недвижимости в GeoRecord.
// Чистая функция: битые записи пропускаются по одной, батч не прерывается.
//
// Правила отбрасывания:
//   - geometry отсутствует целиком (null). Нулевая координата при частично
//     заполненной геометрии - допустимый fallback, такая запись проходит;
//   - нет ни PropertyId, ни id;
//   - координаты вне диапазона [-90,90] / [-180,180].
func NormalizeProperties(raw []domain.RawProperty) []domain.GeoRecord {
	records := make([]domain.GeoRecord, 0, len(raw))

	for i := range raw {
		p := &raw[i]

		if p.Geometry == nil {
			continue
		}

		var id int64
		switch {
		case p.PropertyID != nil:
			id = *p.PropertyID
		case p.ID != nil:
			id = *p.ID
		default:
			continue
		}

		pos := domain.LatLng{}
		if p.Geometry.Y != nil {
			pos.Lat = *p.Geometry.Y
		}
		if p.Geometry.X != nil {
			pos.Lng = *p.Geometry.X
		}
		if !pos.Valid() {
			continue
		}

		var price float64
		if p.Price != nil {
			price = *p.Price
		}

		isPaid := price > 0
		if p.IsPaid != nil {
			isPaid = *p.IsPaid
		}

		records = append(records, domain.GeoRecord{
			ID:          id,
			Position:    pos,
			Category:    p.Type,
			Status:      p.Status,
			IsPaid:      isPaid,
			Price:       price,
			Area:        p.Area,
			Title:       p.Title,
			Address:     p.Address,
			Description: p.Description,
		})
	}

	return records
}

// NormalizePlots преобразует сырые участки в ParcelPolygon.
// Участок отбрасывается, если у него нет непустого первого ring'а
// или ring короче трёх вершин. Координаты источника идут в порядке (x,y),
// то есть (долгота, широта).
func NormalizePlots(raw []domain.RawPlot) []domain.ParcelPolygon {
	parcels := make([]domain.ParcelPolygon, 0, len(raw))

	for i := range raw {
		p := &raw[i]

		ring := p.FirstRing()
		if len(ring) < 3 {
			continue
		}

		vertices := make([]domain.LatLng, 0, len(ring))
		valid := true
		for _, xy := range ring {
			v := domain.LatLng{Lat: xy.Y, Lng: xy.X}
			if !v.Valid() {
				valid = false
				break
			}
			vertices = append(vertices, v)
		}
		if !valid {
			continue
		}

		parcels = append(parcels, domain.ParcelPolygon{
			ID:       p.ID,
			Label:    p.LanduseSU,
			Vertices: vertices,
		})
	}

	return parcels
}
