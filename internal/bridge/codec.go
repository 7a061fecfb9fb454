// Package bridge реализует мост сообщений между рендерером карты
// и состоянием приложения. Стороны не разделяют память: единственный
// канал взаимодействия - сериализованные JSON-сообщения, как у любого
// host/embedded-view message channel.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// renderMessage - исходящий батч геометрии для рендерера
type renderMessage struct {
	Type     string           `json:"type"`
	Markers  []dto.MarkerDTO  `json:"markers"`
	Polygons []dto.PolygonDTO `json:"polygons"`
}

// regionPayload - область карты в формате рендерера
type regionPayload struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// envelope - входящее сообщение от рендерера
type envelope struct {
	Type   string         `json:"type"`
	ID     *int64         `json:"id,omitempty"`
	Region *regionPayload `json:"region,omitempty"`
}

// EncodeRender сериализует render-набор в сообщение рендерера
func EncodeRender(markers []dto.MarkerDTO, polygons []dto.PolygonDTO) ([]byte, error) {
	if markers == nil {
		markers = []dto.MarkerDTO{}
	}
	if polygons == nil {
		polygons = []dto.PolygonDTO{}
	}
	return json.Marshal(renderMessage{
		Type:     domain.EventRender,
		Markers:  markers,
		Polygons: polygons,
	})
}

// DecodeEvent разбирает входящее сообщение рендерера в типизированное
// событие. Неизвестный тип или неполное тело - ошибка, а не паника.
func DecodeEvent(raw []byte) (domain.MapEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed bridge message: %w", err)
	}

	switch env.Type {
	case domain.EventMarkerTapped:
		if env.ID == nil {
			return nil, fmt.Errorf("markerTapped message without id")
		}
		return domain.MarkerTapped{ID: *env.ID}, nil

	case domain.EventRegionChanged:
		if env.Region == nil {
			return nil, fmt.Errorf("regionChanged message without region")
		}
		return domain.RegionChanged{
			Viewport: domain.Viewport{
				Center: domain.LatLng{
					Lat: env.Region.Latitude,
					Lng: env.Region.Longitude,
				},
				LatitudeDelta:  env.Region.LatitudeDelta,
				LongitudeDelta: env.Region.LongitudeDelta,
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown bridge message type: %q", env.Type)
	}
}
