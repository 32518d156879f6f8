package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID uuid.UUID       `gorm:"index" json:"receipt_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(20,2)" json:"price"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2)" json:"unit_price"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,3)" json:"quantity"`
	Unit      string          `json:"unit"` // "un", "kg", "g", "l", "ml"
	Keywords  []string        `gorm:"serializer:json;type:jsonb" json:"keywords"`

	Timestamp
}
