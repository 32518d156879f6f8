package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessScanReceipt   = "receipt scanned successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"
	MessageSuccessGetReceipt    = "receipt retrieved successfully"
	MessageSuccessDeleteReceipt = "receipt deleted successfully"

	MessageFailedScanReceipt   = "failed to scan receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"
	MessageFailedDeleteReceipt = "failed to delete receipt"

	ErrDocumentRequired       = errors.New("document is required")
	ErrInvalidDocument        = errors.New("document could not be decoded")
	ErrInvalidDocumentKind    = errors.New("document must be an image or a pdf")
	ErrGeminiNotConfigured    = errors.New("gemini api key not configured")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
	ErrNoJSONFound            = errors.New("no JSON object found in response")
	ErrReceiptNotFound        = errors.New("receipt not found")
)

type (
	ScanReceiptRequest struct {
		Document string                `json:"document" form:"document"`
		Kind     string                `json:"kind" form:"kind" validate:"omitempty,oneof=image pdf"`
		File     *multipart.FileHeader `json:"-" form:"-"`
	}

	// ExtractedReceipt is the wire shape the extraction model is asked to
	// produce. Field names follow the Portuguese prompt.
	ExtractedReceipt struct {
		StoreName   string             `json:"loja_nome"`
		TotalAmount float64            `json:"valor_total"`
		Products    []ExtractedProduct `json:"produtos"`
	}

	ExtractedProduct struct {
		Name      string   `json:"nome"`
		Price     float64  `json:"preco"`
		UnitPrice float64  `json:"preco_unitario"`
		Quantity  float64  `json:"quantidade"`
		LineTotal float64  `json:"valor_total"`
		Unit      string   `json:"unidade"`
		Keywords  []string `json:"palavras_chave"`
	}

	LineItemResponse struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price"`
		UnitPrice decimal.Decimal `json:"unit_price"`
		Quantity  decimal.Decimal `json:"quantity"`
		Unit      string          `json:"unit"`
		Keywords  []string        `json:"keywords"`
	}

	ReceiptResponse struct {
		ID           string             `json:"id"`
		StoreName    string             `json:"store_name"`
		TotalAmount  decimal.Decimal    `json:"total_amount"`
		PurchaseDate time.Time          `json:"purchase_date"`
		ImageURL     string             `json:"image_url,omitempty"`
		Items        []LineItemResponse `json:"items"`
	}
)
