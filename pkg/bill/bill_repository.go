package bill

import (
	"context"

	"gorm.io/gorm"

	"guia-compras/entities"
)

type (
	BillRepository interface {
		CreateBill(ctx context.Context, bill *entities.Bill) error
		GetBillByID(ctx context.Context, id string) (*entities.Bill, error)
		UpdateBill(ctx context.Context, bill *entities.Bill) error
		DeleteBill(ctx context.Context, id string) error
		GetBills(ctx context.Context, userID string, search string) ([]*entities.Bill, error)
	}

	billRepository struct {
		db *gorm.DB
	}
)

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) CreateBill(ctx context.Context, bill *entities.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetBillByID(ctx context.Context, id string) (*entities.Bill, error) {
	var bill entities.Bill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) UpdateBill(ctx context.Context, bill *entities.Bill) error {
	return r.db.WithContext(ctx).Save(bill).Error
}

func (r *billRepository) DeleteBill(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Bill{}).Error
}

func (r *billRepository) GetBills(ctx context.Context, userID string, search string) ([]*entities.Bill, error) {
	var bills []*entities.Bill

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("supplier_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Order("due_date asc").Find(&bills).Error; err != nil {
		return nil, err
	}

	return bills, nil
}
