package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"guia-compras/entities"
)

type (
	StoreRepository interface {
		GetReceiptsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Receipt, error)
		GetPaidBillsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Bill, error)
		GetReceiptsByStore(ctx context.Context, userID string, storeName string) ([]*entities.Receipt, error)
		RenameStore(ctx context.Context, userID string, oldName, newName string) (receiptsUpdated, billsUpdated int64, err error)
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) GetReceiptsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND purchase_date >= ? AND purchase_date < ?", userID, start, end).
		Order("purchase_date desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	return receipts, nil
}

func (r *storeRepository) GetPaidBillsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Bill, error) {
	var bills []*entities.Bill

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND payment_date >= ? AND payment_date < ?",
			userID, entities.BillStatusPaid, start, end).
		Order("payment_date desc").
		Find(&bills).Error; err != nil {
		return nil, err
	}

	return bills, nil
}

func (r *storeRepository) GetReceiptsByStore(ctx context.Context, userID string, storeName string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt

	if err := r.db.WithContext(ctx).
		Preload("LineItems").
		Where("user_id = ? AND store_name = ?", userID, storeName).
		Order("purchase_date desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	return receipts, nil
}

// RenameStore updates receipts and paid bills carrying the old name inside
// one transaction. Matching is exact; no fuzzy grouping.
func (r *storeRepository) RenameStore(ctx context.Context, userID string, oldName, newName string) (int64, int64, error) {
	var receiptsUpdated, billsUpdated int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Receipt{}).
			Where("user_id = ? AND store_name = ?", userID, oldName).
			Update("store_name", newName)
		if result.Error != nil {
			return result.Error
		}
		receiptsUpdated = result.RowsAffected

		result = tx.Model(&entities.Bill{}).
			Where("user_id = ? AND supplier_name = ? AND status = ?", userID, oldName, entities.BillStatusPaid).
			Update("supplier_name", newName)
		if result.Error != nil {
			return result.Error
		}
		billsUpdated = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return receiptsUpdated, billsUpdated, nil
}
