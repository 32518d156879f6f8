package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID       `gorm:"index" json:"user_id"`
	StoreName    string          `gorm:"index" json:"store_name"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(20,2)" json:"total_amount"`
	PurchaseDate time.Time       `gorm:"index" json:"purchase_date"`
	ImageURL     string          `json:"image_url,omitempty"`

	User      *User       `gorm:"foreignKey:UserID"`
	LineItems []*LineItem `gorm:"foreignKey:ReceiptID"`
	Timestamp
}
