package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetStores      = "stores retrieved successfully"
	MessageSuccessGetStoreDetail = "store detail retrieved successfully"
	MessageSuccessRenameStore    = "store renamed successfully"

	MessageFailedGetStores      = "failed to retrieve stores"
	MessageFailedGetStoreDetail = "failed to retrieve store detail"
	MessageFailedRenameStore    = "failed to rename store"

	ErrStoreNotFound = errors.New("store not found")
	ErrSameStoreName = errors.New("new name must differ from current name")
)

const (
	StoreKindStore    = "store"
	StoreKindSupplier = "supplier"
)

type (
	StoreListEntry struct {
		Name  string          `json:"name"`
		Kind  string          `json:"kind"` // "store" or "supplier"
		Total decimal.Decimal `json:"total"`
		Count int             `json:"count"`
	}

	StoreProductSummary struct {
		Name          string          `json:"name"`
		TotalSpent    decimal.Decimal `json:"total_spent"`
		TotalQuantity decimal.Decimal `json:"total_quantity"`
		AveragePrice  decimal.Decimal `json:"average_price"`
		PurchaseCount int             `json:"purchase_count"`
	}

	StoreDetailResponse struct {
		Name       string                `json:"name"`
		TotalSpent decimal.Decimal       `json:"total_spent"`
		Purchases  []RecentPurchase      `json:"purchases"`
		Products   []StoreProductSummary `json:"products"`
	}

	RenameStoreRequest struct {
		OldName string `json:"old_name" validate:"required"`
		NewName string `json:"new_name" validate:"required"`
	}

	RenameStoreResponse struct {
		Name            string    `json:"name"`
		ReceiptsUpdated int64     `json:"receipts_updated"`
		BillsUpdated    int64     `json:"bills_updated"`
		RenamedAt       time.Time `json:"renamed_at"`
	}
)
