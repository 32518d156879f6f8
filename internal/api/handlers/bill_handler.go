package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"guia-compras/domain"
	"guia-compras/internal/api/presenters"
	"guia-compras/pkg/bill"
)

type (
	BillHandler interface {
		CreateBill(c *fiber.Ctx) error
		UpdateBill(c *fiber.Ctx) error
		DeleteBill(c *fiber.Ctx) error
		GetBills(c *fiber.Ctx) error
		MarkBillPaid(c *fiber.Ctx) error
		GetBillSummary(c *fiber.Ctx) error
	}

	billHandler struct {
		billService bill.BillService
		validator   *validator.Validate
	}
)

func NewBillHandler(billService bill.BillService, validator *validator.Validate) BillHandler {
	return &billHandler{
		billService: billService,
		validator:   validator,
	}
}

func (h *billHandler) CreateBill(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBillRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBill, err)
	}

	res, err := h.billService.CreateBill(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBill, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBill)
}

func (h *billHandler) UpdateBill(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	billID := c.Params("id")
	req := new(domain.UpdateBillRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBill, err)
	}

	if err := h.billService.UpdateBill(c.Context(), billID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBill, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBill)
}

func (h *billHandler) DeleteBill(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	billID := c.Params("id")

	if err := h.billService.DeleteBill(c.Context(), billID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBill, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBill)
}

func (h *billHandler) GetBills(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", "all")
	search := c.Query("search", "")

	bills, err := h.billService.GetBills(c.Context(), userID, status, search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBills, err)
	}

	return presenters.SuccessResponse(c, bills, fiber.StatusOK, domain.MessageSuccessGetBills)
}

func (h *billHandler) MarkBillPaid(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	billID := c.Params("id")

	res, err := h.billService.MarkBillPaid(c.Context(), billID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkBillPaid, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkBillPaid)
}

func (h *billHandler) GetBillSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.billService.GetBillSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBillSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBillSummary)
}
