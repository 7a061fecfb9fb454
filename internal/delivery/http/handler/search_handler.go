package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/utils"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/validator"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// SearchHandler - обработчик поиска локаций
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Geocode godoc
// @Summary Текстовый поиск локации
// @Description Ищет локации по тексту через геокодер. Ошибка поиска не влияет на уже отрисованное состояние карты. При переданном центре результаты сортируются по удалению от него.
// @Tags Search
// @Produce json
// @Param q query string true "Поисковый запрос (минимум 2 символа)"
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Param lat query number false "Широта центра карты"
// @Param lng query number false "Долгота центра карты"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search/geocode [get]
func (h *SearchHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{
		Query: c.Query("q"),
		Limit: c.QueryInt("limit", 10),
	}

	if c.Query("lat") != "" && c.Query("lng") != "" {
		lat := c.QueryFloat("lat")
		lng := c.QueryFloat("lng")
		req.Lat = &lat
		req.Lng = &lng
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.searchUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
