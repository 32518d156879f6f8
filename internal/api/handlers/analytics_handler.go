package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"guia-compras/domain"
	"guia-compras/internal/api/presenters"
	"guia-compras/internal/utils"
	"guia-compras/pkg/analytics"
)

type (
	AnalyticsHandler interface {
		GetSummary(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func rangeFromQuery(c *fiber.Ctx) (analytics.DateRange, error) {
	return analytics.ResolveRange(
		c.Query("preset", ""),
		c.Query("from", ""),
		c.Query("to", ""),
		time.Now(),
		utils.AppLocation(),
	)
}

func (h *analyticsHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	rng, err := rangeFromQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	res, err := h.analyticsService.Summary(c.Context(), userID, rng)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *analyticsHandler) GetProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	rng, err := rangeFromQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	res, err := h.analyticsService.Products(
		c.Context(),
		userID,
		rng,
		c.Query("store", ""),
		c.Query("sort", "name"),
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *analyticsHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	rng, err := rangeFromQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	res, err := h.analyticsService.History(c.Context(), userID, rng)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}
