package domain

// Специальные значения фильтров
const (
	FilterAll  = "All"  // соответствует любому значению
	FilterNone = "None" // только записи без статуса
)

// PriceRange - активный диапазон цен [Min, Max] включительно
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState - снимок активных критериев фильтрации.
// Значение принадлежит UI-слою и передаётся в движок фильтрации
// на каждом пересчёте; ядро его никогда не мутирует.
type FilterState struct {
	Categories  []string    `json:"categories"`
	Statuses    []string    `json:"statuses"`
	PaidOnly    bool        `json:"paid_only"`
	UnpaidOnly  bool        `json:"unpaid_only"`
	SearchText  string      `json:"search_text"`
	AreaBuckets []string    `json:"area_buckets"`
	PriceRange  *PriceRange `json:"price_range,omitempty"`
}

// DefaultFilterState возвращает полностью разрешающее состояние:
// фильтрация по нему обязана вернуть входной набор без изменений.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{FilterAll},
		Statuses:   []string{FilterAll},
	}
}

// ToggleStatus переключает статус в наборе активных.
// "None" ведёт себя как radio-button: его выбор очищает все остальные
// статусы, а выбор любого другого статуса убирает "None".
func (s FilterState) ToggleStatus(status string) FilterState {
	if status == FilterNone {
		if containsString(s.Statuses, FilterNone) {
			s.Statuses = []string{FilterAll}
		} else {
			s.Statuses = []string{FilterNone}
		}
		return s
	}

	next := make([]string, 0, len(s.Statuses)+1)
	found := false
	for _, v := range s.Statuses {
		if v == FilterNone || v == FilterAll {
			continue
		}
		if v == status {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, status)
	}
	if len(next) == 0 {
		next = []string{FilterAll}
	}
	s.Statuses = next
	return s
}

// AreaRule - правило бакета площади: либо точное значение,
// либо унарный предикат "больше X". Площадь в марлах.
type AreaRule struct {
	Exact       *float64
	GreaterThan *float64
}

// Matches проверяет площадь записи против правила
func (r AreaRule) Matches(area float64) bool {
	if r.Exact != nil {
		return area == *r.Exact
	}
	if r.GreaterThan != nil {
		return area > *r.GreaterThan
	}
	return false
}

// AreaBucketRules - именованные бакеты площади, доступные в фильтре
var AreaBucketRules = map[string]AreaRule{
	"3marla":  {Exact: f64(3)},
	"5marla":  {Exact: f64(5)},
	"7marla":  {Exact: f64(7)},
	"10marla": {Exact: f64(10)},
	"1kanal":  {Exact: f64(20)},
	"large":   {GreaterThan: f64(20)},
}

func f64(v float64) *float64 { return &v }

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Contains - вспомогательная проверка членства для движка фильтрации
func Contains(list []string, v string) bool { return containsString(list, v) }
