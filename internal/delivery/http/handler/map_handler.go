package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/domain"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/utils"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/validator"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// MapHandler - обработчик запросов данных карты
type MapHandler struct {
	mapUC  *usecase.MapDataUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapDataUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// QueryMap godoc
// @Summary Получение render-набора карты
// @Description Прогоняет текущий снапшот через фильтры и отсечение по вьюпорту и возвращает маркеры и полигоны, готовые к рендеру
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.MapQueryRequest true "Фильтры и видимая область"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapDataResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/map/query [post]
func (h *MapHandler) QueryMap(c *fiber.Ctx) error {
	var req dto.MapQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.mapUC.Query(c.Context(), req.Filters, req.Viewport.ToViewport())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.Markers) + len(result.Polygons),
		Truncated: result.Truncated,
	})
}

// GetMarkers godoc
// @Summary Получение маркеров через query-параметры
// @Description GET-вариант map/query для простых клиентов: фильтры и вьюпорт передаются query-параметрами
// @Tags Map
// @Produce json
// @Param lat query number true "Широта центра"
// @Param lng query number true "Долгота центра"
// @Param lat_delta query number true "Span широты"
// @Param lng_delta query number true "Span долготы"
// @Param categories query string false "Категории через запятую (All - все)"
// @Param statuses query string false "Статусы через запятую (All, None)"
// @Param paid query bool false "Только оплаченные"
// @Param unpaid query bool false "Только неоплаченные"
// @Param q query string false "Текстовый фильтр по title/address"
// @Param areas query string false "Бакеты площади через запятую"
// @Param min_price query number false "Минимальная цена"
// @Param max_price query number false "Максимальная цена"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapDataResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/markers [get]
func (h *MapHandler) GetMarkers(c *fiber.Ctx) error {
	viewport := dto.ViewportRequest{
		Lat:      c.QueryFloat("lat"),
		Lng:      c.QueryFloat("lng"),
		LatDelta: c.QueryFloat("lat_delta"),
		LngDelta: c.QueryFloat("lng_delta"),
	}
	if err := validator.Validate(&viewport); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	state := domain.DefaultFilterState()
	if v := splitCSV(c.Query("categories")); len(v) > 0 {
		state.Categories = v
	}
	if v := splitCSV(c.Query("statuses")); len(v) > 0 {
		state.Statuses = v
	}
	state.PaidOnly = c.QueryBool("paid")
	state.UnpaidOnly = c.QueryBool("unpaid")
	state.SearchText = c.Query("q")
	state.AreaBuckets = splitCSV(c.Query("areas"))

	if c.Query("min_price") != "" || c.Query("max_price") != "" {
		state.PriceRange = &domain.PriceRange{
			Min: c.QueryFloat("min_price"),
			Max: c.QueryFloat("max_price", 1e12),
		}
	}

	result, err := h.mapUC.Query(c.Context(), state, viewport.ToViewport())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.Markers) + len(result.Polygons),
		Truncated: result.Truncated,
	})
}

// GetStats godoc
// @Summary Статистика по текущему снапшоту
// @Description Количество записей и участков, разбивка по категориям, статусам и оплате
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/map/stats [get]
func (h *MapHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.mapUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{
		Partial: stats.Partial,
	})
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
