package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateBill     = "bill created successfully"
	MessageSuccessUpdateBill     = "bill updated successfully"
	MessageSuccessDeleteBill     = "bill deleted successfully"
	MessageSuccessGetBills       = "bills retrieved successfully"
	MessageSuccessMarkBillPaid   = "bill marked as paid"
	MessageSuccessGetBillSummary = "bill summary retrieved successfully"

	MessageFailedCreateBill     = "failed to create bill"
	MessageFailedUpdateBill     = "failed to update bill"
	MessageFailedDeleteBill     = "failed to delete bill"
	MessageFailedGetBills       = "failed to retrieve bills"
	MessageFailedMarkBillPaid   = "failed to mark bill as paid"
	MessageFailedGetBillSummary = "failed to retrieve bill summary"

	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill already paid")
	ErrInvalidBillDate = errors.New("invalid bill date")
)

type (
	CreateBillRequest struct {
		SupplierName     string          `json:"supplier_name" validate:"required"`
		Amount           decimal.Decimal `json:"amount" validate:"required"`
		IssueDate        string          `json:"issue_date" validate:"required"`
		CompetencyDate   string          `json:"competency_date" validate:"omitempty"`
		DueDate          string          `json:"due_date" validate:"required"`
		Description      string          `json:"description"`
		PaymentMethod    string          `json:"payment_method"`
		FinancialAccount string          `json:"financial_account"`
		CategoryName     string          `json:"category_name"`
		DocumentNumber   string          `json:"document_number"`
		MarkAsPaid       bool            `json:"mark_as_paid"`
	}

	UpdateBillRequest struct {
		SupplierName     string          `json:"supplier_name" validate:"omitempty"`
		Amount           decimal.Decimal `json:"amount" validate:"omitempty"`
		IssueDate        string          `json:"issue_date" validate:"omitempty"`
		CompetencyDate   string          `json:"competency_date" validate:"omitempty"`
		DueDate          string          `json:"due_date" validate:"omitempty"`
		Description      string          `json:"description"`
		PaymentMethod    string          `json:"payment_method"`
		FinancialAccount string          `json:"financial_account"`
		CategoryName     string          `json:"category_name"`
		DocumentNumber   string          `json:"document_number"`
	}

	BillResponse struct {
		ID               string          `json:"id"`
		SupplierName     string          `json:"supplier_name"`
		Amount           decimal.Decimal `json:"amount"`
		IssueDate        time.Time       `json:"issue_date"`
		CompetencyDate   time.Time       `json:"competency_date"`
		DueDate          time.Time       `json:"due_date"`
		PaymentDate      *time.Time      `json:"payment_date,omitempty"`
		Description      string          `json:"description,omitempty"`
		PaymentMethod    string          `json:"payment_method,omitempty"`
		FinancialAccount string          `json:"financial_account,omitempty"`
		CategoryName     string          `json:"category_name,omitempty"`
		DocumentNumber   string          `json:"document_number,omitempty"`
		Status           string          `json:"status"`
	}

	BillSummaryResponse struct {
		TotalAmount  decimal.Decimal `json:"total_amount"`
		OpenCount    int             `json:"open_count"`
		OverdueCount int             `json:"overdue_count"`
		PaidCount    int             `json:"paid_count"`
	}
)
