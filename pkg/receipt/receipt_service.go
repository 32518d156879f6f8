package receipt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"guia-compras/domain"
	"guia-compras/entities"
	"guia-compras/internal/utils"
	"guia-compras/internal/utils/storage"
)

type (
	ReceiptService interface {
		ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, userID string) (domain.ReceiptResponse, error)
		GetReceipts(ctx context.Context, userID string, page, limit int) ([]domain.ReceiptResponse, int64, error)
		GetReceiptByID(ctx context.Context, id string, userID string) (domain.ReceiptResponse, error)
		DeleteReceipt(ctx context.Context, id string, userID string) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		gateway           ExtractionGateway
		s3                storage.AwsS3
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, gateway ExtractionGateway, s3 storage.AwsS3) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		gateway:           gateway,
		s3:                s3,
	}
}

func (s *receiptService) ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, userID string) (domain.ReceiptResponse, error) {
	if userID == "" {
		return domain.ReceiptResponse{}, domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReceiptResponse{}, domain.ErrParseUUID
	}

	document, mimeType, err := s.resolveDocument(req)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}

	receiptID := uuid.New()

	imageURL := ""
	objectKey, err := s.s3.UploadBytes(
		fmt.Sprintf("receipt-%s", receiptID.String()),
		document,
		mimeType,
		"receipts",
		storage.AllowDocument...,
	)
	if err != nil {
		utils.LogError(utils.GetLogger(), "receipt", "ScanReceipt", "uploading document", receiptID.String(), err)
	} else {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	responseText, err := s.gateway.ExtractReceipt(ctx, document, mimeType)
	if err != nil {
		utils.LogError(utils.GetLogger(), "receipt", "ScanReceipt", "calling extraction model", nil, err)
		return domain.ReceiptResponse{}, err
	}

	extracted, err := ParseExtraction(responseText)
	if err != nil {
		utils.LogError(utils.GetLogger(), "receipt", "ScanReceipt", "parsing extraction response", responseText, err)
		if errors.Is(err, domain.ErrNoJSONFound) {
			return domain.ReceiptResponse{}, err
		}
		return domain.ReceiptResponse{}, domain.ErrGeminiProcessingFailed
	}

	receipt := &entities.Receipt{
		ID:           receiptID,
		UserID:       userUUID,
		StoreName:    extracted.StoreName,
		TotalAmount:  decimal.NewFromFloat(extracted.TotalAmount),
		PurchaseDate: time.Now(),
		ImageURL:     imageURL,
	}

	items := make([]*entities.LineItem, 0, len(extracted.Products))
	for _, product := range extracted.Products {
		items = append(items, &entities.LineItem{
			ID:        uuid.New(),
			ReceiptID: receiptID,
			Name:      product.Name,
			Price:     decimal.NewFromFloat(product.LineTotal),
			UnitPrice: decimal.NewFromFloat(product.UnitPrice),
			Quantity:  decimal.NewFromFloat(product.Quantity),
			Unit:      product.Unit,
			Keywords:  product.Keywords,
		})
	}

	if err := s.receiptRepository.SaveReceipt(ctx, receipt, items); err != nil {
		utils.LogError(utils.GetLogger(), "receipt", "ScanReceipt", "persisting receipt", receiptID.String(), err)
		return domain.ReceiptResponse{}, err
	}

	receipt.LineItems = items
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) resolveDocument(req domain.ScanReceiptRequest) ([]byte, string, error) {
	if req.File == nil {
		return DecodeDocument(req)
	}

	file, err := req.File.Open()
	if err != nil {
		return nil, "", domain.ErrInvalidDocument
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", domain.ErrInvalidDocument
	}
	if len(data) == 0 {
		return nil, "", domain.ErrDocumentRequired
	}

	mimeType := req.File.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return data, mimeType, nil
}

func (s *receiptService) GetReceipts(ctx context.Context, userID string, page, limit int) ([]domain.ReceiptResponse, int64, error) {
	receipts, count, err := s.receiptRepository.GetReceipts(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		response = append(response, toReceiptResponse(receipt))
	}

	return response, count, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, id string, userID string) (domain.ReceiptResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}

	if receipt.UserID.String() != userID {
		return domain.ReceiptResponse{}, domain.ErrUnauthorizedAccess
	}

	return toReceiptResponse(receipt), nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string, userID string) error {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}

	if receipt.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if receipt.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(receipt.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.receiptRepository.DeleteReceipt(ctx, id)
}

func toReceiptResponse(receipt *entities.Receipt) domain.ReceiptResponse {
	items := make([]domain.LineItemResponse, 0, len(receipt.LineItems))
	for _, item := range receipt.LineItems {
		items = append(items, domain.LineItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Price:     item.Price,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Keywords:  item.Keywords,
		})
	}

	return domain.ReceiptResponse{
		ID:           receipt.ID.String(),
		StoreName:    receipt.StoreName,
		TotalAmount:  receipt.TotalAmount,
		PurchaseDate: receipt.PurchaseDate,
		ImageURL:     receipt.ImageURL,
		Items:        items,
	}
}
