package domain

// RawGeometry - геометрия точки в ответе GIS-сервера.
// Порядок координат источника: x = долгота, y = широта.
// Отсутствующая координата трактуется как 0 (допустимый fallback,
// когда геометрия присутствует частично).
type RawGeometry struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// RawPhoto - фотография объекта (бинарные данные непрозрачны для ядра)
type RawPhoto struct {
	Data []byte `json:"data"`
}

// RawProperty - сырой объект недвижимости из properties endpoint
type RawProperty struct {
	PropertyID  *int64       `json:"PropertyId"`
	ID          *int64       `json:"id"`
	Geometry    *RawGeometry `json:"geometry"`
	Price       *float64     `json:"price"`
	Type        string       `json:"type"`
	Status      *string      `json:"status"`
	IsPaid      *bool        `json:"IsPaid"`
	Area        *float64     `json:"area"`
	Title       string       `json:"title"`
	Address     string       `json:"address"`
	Description string       `json:"description"`
	Photos      []RawPhoto   `json:"Photos,omitempty"`
}

// RawXY - пара координат вершины участка
type RawXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RawPlot - сырой земельный участок из plots endpoint.
// Геометрия лежит в WKT[0][0] (или SHAPE[0][0] в старом формате):
// первый ring первого shape.
type RawPlot struct {
	ID        int64       `json:"id"`
	WKT       [][][]RawXY `json:"WKT"`
	Shape     [][][]RawXY `json:"SHAPE"`
	LanduseSU string      `json:"landuse_su"`
}

// FirstRing возвращает первый ring первого shape или nil, если геометрия пуста
func (p *RawPlot) FirstRing() []RawXY {
	shapes := p.WKT
	if len(shapes) == 0 {
		shapes = p.Shape
	}
	if len(shapes) == 0 || len(shapes[0]) == 0 {
		return nil
	}
	return shapes[0][0]
}
