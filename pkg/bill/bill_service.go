package bill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"guia-compras/domain"
	"guia-compras/entities"
	"guia-compras/internal/utils"
)

type (
	BillService interface {
		CreateBill(ctx context.Context, req domain.CreateBillRequest, userID string) (domain.BillResponse, error)
		UpdateBill(ctx context.Context, id string, req domain.UpdateBillRequest, userID string) error
		DeleteBill(ctx context.Context, id string, userID string) error
		GetBills(ctx context.Context, userID string, status, search string) ([]domain.BillResponse, error)
		MarkBillPaid(ctx context.Context, id string, userID string) (domain.BillResponse, error)
		GetBillSummary(ctx context.Context, userID string) (domain.BillSummaryResponse, error)
	}

	billService struct {
		billRepository BillRepository
	}
)

func NewBillService(billRepository BillRepository) BillService {
	return &billService{billRepository: billRepository}
}

// presentStatus resolves the status a bill is displayed with. An open bill
// past its due date is presented as overdue; the stored row is never
// mutated by a read.
func presentStatus(bill *entities.Bill, today time.Time) string {
	if bill.Status == entities.BillStatusOpen && bill.DueDate.Before(today) {
		return entities.BillStatusOverdue
	}
	return bill.Status
}

func parseBillDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidBillDate
	}
	return date, nil
}

func (s *billService) CreateBill(ctx context.Context, req domain.CreateBillRequest, userID string) (domain.BillResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BillResponse{}, domain.ErrParseUUID
	}

	loc := utils.AppLocation()

	issueDate, err := parseBillDate(req.IssueDate, loc)
	if err != nil {
		return domain.BillResponse{}, err
	}

	dueDate, err := parseBillDate(req.DueDate, loc)
	if err != nil {
		return domain.BillResponse{}, err
	}

	competencyDate := issueDate
	if req.CompetencyDate != "" {
		competencyDate, err = parseBillDate(req.CompetencyDate, loc)
		if err != nil {
			return domain.BillResponse{}, err
		}
	}

	bill := &entities.Bill{
		ID:               uuid.New(),
		UserID:           userUUID,
		SupplierName:     req.SupplierName,
		Amount:           req.Amount,
		IssueDate:        issueDate,
		CompetencyDate:   competencyDate,
		DueDate:          dueDate,
		Description:      req.Description,
		PaymentMethod:    req.PaymentMethod,
		FinancialAccount: req.FinancialAccount,
		CategoryName:     req.CategoryName,
		DocumentNumber:   req.DocumentNumber,
		Status:           entities.BillStatusOpen,
	}

	// "Save and pay" settles the bill in the same request.
	if req.MarkAsPaid {
		now := time.Now().In(loc)
		bill.Status = entities.BillStatusPaid
		bill.PaymentDate = &now
	}

	if err := s.billRepository.CreateBill(ctx, bill); err != nil {
		return domain.BillResponse{}, err
	}

	return toBillResponse(bill, utils.StartOfDay(time.Now(), loc)), nil
}

func (s *billService) UpdateBill(ctx context.Context, id string, req domain.UpdateBillRequest, userID string) error {
	bill, err := s.billRepository.GetBillByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBillNotFound
		}
		return err
	}

	if bill.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	loc := utils.AppLocation()

	if req.SupplierName != "" {
		bill.SupplierName = req.SupplierName
	}
	if !req.Amount.IsZero() {
		bill.Amount = req.Amount
	}
	if req.IssueDate != "" {
		issueDate, err := parseBillDate(req.IssueDate, loc)
		if err != nil {
			return err
		}
		bill.IssueDate = issueDate
	}
	if req.CompetencyDate != "" {
		competencyDate, err := parseBillDate(req.CompetencyDate, loc)
		if err != nil {
			return err
		}
		bill.CompetencyDate = competencyDate
	}
	if req.DueDate != "" {
		dueDate, err := parseBillDate(req.DueDate, loc)
		if err != nil {
			return err
		}
		bill.DueDate = dueDate
	}
	if req.Description != "" {
		bill.Description = req.Description
	}
	if req.PaymentMethod != "" {
		bill.PaymentMethod = req.PaymentMethod
	}
	if req.FinancialAccount != "" {
		bill.FinancialAccount = req.FinancialAccount
	}
	if req.CategoryName != "" {
		bill.CategoryName = req.CategoryName
	}
	if req.DocumentNumber != "" {
		bill.DocumentNumber = req.DocumentNumber
	}

	return s.billRepository.UpdateBill(ctx, bill)
}

func (s *billService) DeleteBill(ctx context.Context, id string, userID string) error {
	bill, err := s.billRepository.GetBillByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBillNotFound
		}
		return err
	}

	if bill.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.billRepository.DeleteBill(ctx, id)
}

func (s *billService) GetBills(ctx context.Context, userID string, status, search string) ([]domain.BillResponse, error) {
	bills, err := s.billRepository.GetBills(ctx, userID, search)
	if err != nil {
		return nil, err
	}

	loc := utils.AppLocation()
	today := utils.StartOfDay(time.Now(), loc)

	response := make([]domain.BillResponse, 0, len(bills))
	for _, bill := range bills {
		presented := presentStatus(bill, today)
		if status != "" && status != "all" && presented != status {
			continue
		}
		response = append(response, toBillResponse(bill, today))
	}

	return response, nil
}

func (s *billService) MarkBillPaid(ctx context.Context, id string, userID string) (domain.BillResponse, error) {
	bill, err := s.billRepository.GetBillByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BillResponse{}, domain.ErrBillNotFound
		}
		return domain.BillResponse{}, err
	}

	if bill.UserID.String() != userID {
		return domain.BillResponse{}, domain.ErrUnauthorizedAccess
	}

	if bill.Status == entities.BillStatusPaid {
		return domain.BillResponse{}, domain.ErrBillAlreadyPaid
	}

	loc := utils.AppLocation()
	now := time.Now().In(loc)
	bill.Status = entities.BillStatusPaid
	bill.PaymentDate = &now

	if err := s.billRepository.UpdateBill(ctx, bill); err != nil {
		return domain.BillResponse{}, err
	}

	return toBillResponse(bill, utils.StartOfDay(now, loc)), nil
}

func (s *billService) GetBillSummary(ctx context.Context, userID string) (domain.BillSummaryResponse, error) {
	bills, err := s.billRepository.GetBills(ctx, userID, "")
	if err != nil {
		return domain.BillSummaryResponse{}, err
	}

	loc := utils.AppLocation()
	today := utils.StartOfDay(time.Now(), loc)

	summary := domain.BillSummaryResponse{TotalAmount: decimal.Zero}
	for _, bill := range bills {
		summary.TotalAmount = summary.TotalAmount.Add(bill.Amount)
		switch presentStatus(bill, today) {
		case entities.BillStatusOpen:
			summary.OpenCount++
		case entities.BillStatusOverdue:
			summary.OverdueCount++
		case entities.BillStatusPaid:
			summary.PaidCount++
		}
	}

	return summary, nil
}

func toBillResponse(bill *entities.Bill, today time.Time) domain.BillResponse {
	return domain.BillResponse{
		ID:               bill.ID.String(),
		SupplierName:     bill.SupplierName,
		Amount:           bill.Amount,
		IssueDate:        bill.IssueDate,
		CompetencyDate:   bill.CompetencyDate,
		DueDate:          bill.DueDate,
		PaymentDate:      bill.PaymentDate,
		Description:      bill.Description,
		PaymentMethod:    bill.PaymentMethod,
		FinancialAccount: bill.FinancialAccount,
		CategoryName:     bill.CategoryName,
		DocumentNumber:   bill.DocumentNumber,
		Status:           presentStatus(bill, today),
	}
}
