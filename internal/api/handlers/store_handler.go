package handlers

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"guia-compras/domain"
	"guia-compras/internal/api/presenters"
	"guia-compras/pkg/store"
)

type (
	StoreHandler interface {
		GetStores(c *fiber.Ctx) error
		GetStoreDetail(c *fiber.Ctx) error
		RenameStore(c *fiber.Ctx) error
	}

	storeHandler struct {
		storeService store.StoreService
		validator    *validator.Validate
	}
)

func NewStoreHandler(storeService store.StoreService, validator *validator.Validate) StoreHandler {
	return &storeHandler{
		storeService: storeService,
		validator:    validator,
	}
}

func (h *storeHandler) GetStores(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	rng, err := rangeFromQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStores, err)
	}

	res, err := h.storeService.ListStores(
		c.Context(),
		userID,
		rng,
		c.Query("kind", ""),
		c.Query("sort", "total-desc"),
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStores, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStores)
}

func (h *storeHandler) GetStoreDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStoreDetail, err)
	}

	res, err := h.storeService.StoreDetail(c.Context(), userID, name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStoreDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStoreDetail)
}

func (h *storeHandler) RenameStore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RenameStoreRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameStore, err)
	}

	res, err := h.storeService.RenameStore(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameStore, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameStore)
}
