package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetSummary  = "spending summary retrieved successfully"
	MessageSuccessGetProducts = "product catalog retrieved successfully"
	MessageSuccessGetHistory  = "purchase history retrieved successfully"

	MessageFailedGetSummary  = "failed to retrieve spending summary"
	MessageFailedGetProducts = "failed to retrieve product catalog"
	MessageFailedGetHistory  = "failed to retrieve purchase history"

	ErrUnknownPreset    = errors.New("unknown date range preset")
	ErrInvalidDateRange = errors.New("invalid date range")
)

const (
	HistoryKindPurchase = "purchase"
	HistoryKindBill     = "bill"
)

type (
	StoreStat struct {
		Name  string          `json:"name"`
		Total decimal.Decimal `json:"total"`
		Count int             `json:"count"`
	}

	ProductStat struct {
		Name     string          `json:"name"`
		Total    decimal.Decimal `json:"total"`
		Quantity decimal.Decimal `json:"quantity"`
	}

	RecentPurchase struct {
		ID           string          `json:"id"`
		StoreName    string          `json:"store_name"`
		TotalAmount  decimal.Decimal `json:"total_amount"`
		PurchaseDate time.Time       `json:"purchase_date"`
		ItemCount    int             `json:"item_count"`
	}

	SummaryResponse struct {
		TotalSpent      decimal.Decimal  `json:"total_spent"`
		PurchaseCount   int              `json:"purchase_count"`
		AverageSpent    decimal.Decimal  `json:"average_spent"`
		StoreCount      int              `json:"store_count"`
		ProductCount    int              `json:"product_count"`
		TopStores       []StoreStat      `json:"top_stores"`
		TopProducts     []ProductStat    `json:"top_products"`
		RecentPurchases []RecentPurchase `json:"recent_purchases"`
	}

	ProductCatalogEntry struct {
		Name             string          `json:"name"`
		TotalSpent       decimal.Decimal `json:"total_spent"`
		TotalQuantity    decimal.Decimal `json:"total_quantity"`
		AverageUnitPrice decimal.Decimal `json:"average_unit_price"`
		Stores           []string        `json:"stores"`
		PurchaseCount    int             `json:"purchase_count"`
		LastPurchase     time.Time       `json:"last_purchase"`
	}

	HistoryEntry struct {
		Kind         string          `json:"kind"` // "purchase" or "bill"
		Date         time.Time       `json:"date"`
		Label        string          `json:"label"`
		Amount       decimal.Decimal `json:"amount"`
		ReceiptID    string          `json:"receipt_id,omitempty"`
		ItemCount    int             `json:"item_count,omitempty"`
		BillID       string          `json:"bill_id,omitempty"`
		CategoryName string          `json:"category_name,omitempty"`
	}

	HistoryResponse struct {
		Entries []HistoryEntry  `json:"entries"`
		Total   decimal.Decimal `json:"total"`
	}
)
