package domain

// MarkerStyle - цвет и иконка маркера для рендерера
type MarkerStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Палитра статусов. Таблица обязана быть тотальной: любой статус,
// включая нераспознанный, получает определённый стиль.
var statusStyles = map[string]MarkerStyle{
	StatusInProgress:   {Color: "#F39C12", Icon: "wrench"},
	StatusDisconnected: {Color: "#E74C3C", Icon: "power-off"},
	StatusConflict:     {Color: "#8E44AD", Icon: "alert"},
	StatusNew:          {Color: "#3498DB", Icon: "star"},
	StatusNotice:       {Color: "#F1C40F", Icon: "bell"},
}

var (
	paidStyle   = MarkerStyle{Color: "#27AE60", Icon: "home"}
	unpaidStyle = MarkerStyle{Color: "#95A5A6", Icon: "home"}
)

// Стиль полигонов участков
const (
	ParcelFillColor   = "#2ECC7133"
	ParcelStrokeColor = "#2ECC71"
)

// StyleFor возвращает стиль маркера по статусу записи.
// Для отсутствующего или неизвестного статуса fallback выбирается
// по признаку оплаты.
func StyleFor(status *string, isPaid bool) MarkerStyle {
	if status != nil {
		if style, ok := statusStyles[*status]; ok {
			return style
		}
	}
	if isPaid {
		return paidStyle
	}
	return unpaidStyle
}
