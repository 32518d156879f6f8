package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BillStatusOpen    = "em_aberto"
	BillStatusOverdue = "atrasada"
	BillStatusPaid    = "paga"
)

type Bill struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID       `gorm:"index" json:"user_id"`
	SupplierName     string          `gorm:"index" json:"supplier_name"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	IssueDate        time.Time       `json:"issue_date"`
	CompetencyDate   time.Time       `json:"competency_date"`
	DueDate          time.Time       `gorm:"index" json:"due_date"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	Description      string          `json:"description,omitempty"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	FinancialAccount string          `json:"financial_account,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	DocumentNumber   string          `json:"document_number,omitempty"`
	Status           string          `json:"status"` // "em_aberto", "atrasada", "paga"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
