package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/errors"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/utils"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/pkg/validator"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase"
	"github.com/DurraizShahid/watermatrixfrontend-sub000/internal/usecase/dto"
)

// ListingHandler - обработчик объявлений
type ListingHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewListingHandler - создание нового ListingHandler
func NewListingHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// SubmitListing godoc
// @Summary Добавление объявления
// @Description Сохраняет пользовательское объявление; оно появится на карте на следующем цикле обновления снапшота
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body dto.SubmitListingRequest true "Данные объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubmitListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/listings [post]
func (h *ListingHandler) SubmitListing(c *fiber.Ctx) error {
	var req dto.SubmitListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.listingUC.Submit(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListListings godoc
// @Summary Список объявлений
// @Description Все пользовательские объявления, опционально суженные по категориям
// @Tags Listings
// @Produce json
// @Param categories query string false "Категории через запятую"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ListingResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) ListListings(c *fiber.Ctx) error {
	result, err := h.listingUC.List(c.Context(), splitCSV(c.Query("categories")))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// GetListing godoc
// @Summary Детали объявления
// @Description Экран деталей, на который ведёт навигация по событию markerTapped
// @Tags Listings
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.listingUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
