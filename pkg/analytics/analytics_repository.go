package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"guia-compras/entities"
)

type (
	AnalyticsRepository interface {
		GetReceiptsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Receipt, error)
		GetPaidBillsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Bill, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetReceiptsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt

	if err := r.db.WithContext(ctx).
		Preload("LineItems").
		Where("user_id = ? AND purchase_date >= ? AND purchase_date < ?", userID, start, end).
		Order("purchase_date desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	return receipts, nil
}

func (r *analyticsRepository) GetPaidBillsInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.Bill, error) {
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
