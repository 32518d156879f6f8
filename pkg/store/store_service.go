package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"guia-compras/domain"
	"guia-compras/pkg/analytics"
)

type (
	StoreService interface {
		ListStores(ctx context.Context, userID string, rng analytics.DateRange, kindFilter, sortBy string) ([]domain.StoreListEntry, error)
		StoreDetail(ctx context.Context, userID string, name string) (domain.StoreDetailResponse, error)
		RenameStore(ctx context.Context, req domain.RenameStoreRequest, userID string) (domain.RenameStoreResponse, error)
	}

	storeService struct {
		storeRepository StoreRepository
	}
)

func NewStoreService(storeRepository StoreRepository) StoreService {
	return &storeService{storeRepository: storeRepository}
}

func (s *storeService) ListStores(ctx context.Context, userID string, rng analytics.DateRange, kindFilter, sortBy string) ([]domain.StoreListEntry, error) {
	entries := make([]domain.StoreListEntry, 0)
	index := make(map[string]int)

	if kindFilter == "" || kindFilter == domain.StoreKindStore {
		receipts, err := s.storeRepository.GetReceiptsInRange(ctx, userID, rng.Start, rng.End)
		if err != nil {
			return nil, err
		}
		for _, receipt := range receipts {
			key := domain.StoreKindStore + ":" + receipt.StoreName
			i, ok := index[key]
			if !ok {
				i = len(entries)
				index[key] = i
				entries = append(entries, domain.StoreListEntry{
					Name:  receipt.StoreName,
					Kind:  domain.StoreKindStore,
					Total: decimal.Zero,
				})
			}
			entries[i].Total = entries[i].Total.Add(receipt.TotalAmount)
			entries[i].Count++
		}
	}

	if kindFilter == "" || kindFilter == domain.StoreKindSupplier {
		bills, err := s.storeRepository.GetPaidBillsInRange(ctx, userID, rng.Start, rng.End)
		if err != nil {
			return nil, err
		}
		for _, bill := range bills {
			key := domain.StoreKindSupplier + ":" + bill.SupplierName
			i, ok := index[key]
			if !ok {
				i = len(entries)
				index[key] = i
				entries = append(entries, domain.StoreListEntry{
					Name:  bill.SupplierName,
					Kind:  domain.StoreKindSupplier,
					Total: decimal.Zero,
				})
			}
			entries[i].Total = entries[i].Total.Add(bill.Amount)
			entries[i].Count++
		}
	}

	switch sortBy {
	case "total-asc":
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Total.LessThan(entries[j].Total)
		})
	case "name":
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	case "count":
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	default: // "total-desc"
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Total.GreaterThan(entries[j].Total)
		})
	}

	return entries, nil
}

func (s *storeService) StoreDetail(ctx context.Context, userID string, name string) (domain.StoreDetailResponse, error) {
	receipts, err := s.storeRepository.GetReceiptsByStore(ctx, userID, name)
	if err != nil {
		return domain.StoreDetailResponse{}, err
	}
	if len(receipts) == 0 {
		return domain.StoreDetailResponse{}, domain.ErrStoreNotFound
	}

	totalSpent := decimal.Zero
	purchases := make([]domain.RecentPurchase, 0, len(receipts))

	type productAcc struct {
		summary domain.StoreProductSummary
		unitSum decimal.Decimal
	}
	accs := make(map[string]*productAcc)
	order := make([]string, 0)

	for _, receipt := range receipts {
		totalSpent = totalSpent.Add(receipt.TotalAmount)
		purchases = append(purchases, domain.RecentPurchase{
			ID:           receipt.ID.String(),
			StoreName:    receipt.StoreName,
			TotalAmount:  receipt.TotalAmount,
			PurchaseDate: receipt.PurchaseDate,
			ItemCount:    len(receipt.LineItems),
		})

		for _, item := range receipt.LineItems {
			acc, ok := accs[item.Name]
			if !ok {
				acc = &productAcc{
					summary: domain.StoreProductSummary{
						Name:          item.Name,
						TotalSpent:    decimal.Zero,
						TotalQuantity: decimal.Zero,
					},
					unitSum: decimal.Zero,
				}
				accs[item.Name] = acc
				order = append(order, item.Name)
			}
			acc.summary.TotalSpent = acc.summary.TotalSpent.Add(item.Price)
			acc.summary.TotalQuantity = acc.summary.TotalQuantity.Add(item.Quantity)
			acc.summary.PurchaseCount++
			acc.unitSum = acc.unitSum.Add(item.UnitPrice)
		}
	}

	products := make([]domain.StoreProductSummary, 0, len(order))
	for _, productName := range order {
		acc := accs[productName]
		acc.summary.AveragePrice = acc.unitSum.Div(decimal.NewFromInt(int64(acc.summary.PurchaseCount))).Round(2)
		products = append(products, acc.summary)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalSpent.GreaterThan(products[j].TotalSpent)
	})

	return domain.StoreDetailResponse{
		Name:       name,
		TotalSpent: totalSpent,
		Purchases:  purchases,
		Products:   products,
	}, nil
}

func (s *storeService) RenameStore(ctx context.Context, req domain.RenameStoreRequest, userID string) (domain.RenameStoreResponse, error) {
	oldName := strings.TrimSpace(req.OldName)
	newName := strings.TrimSpace(req.NewName)

	if oldName == newName {
		return domain.RenameStoreResponse{}, domain.ErrSameStoreName
	}

	receiptsUpdated, billsUpdated, err := s.storeRepository.RenameStore(ctx, userID, oldName, newName)
	if err != nil {
		return domain.RenameStoreResponse{}, err
	}

	if receiptsUpdated == 0 && billsUpdated == 0 {
		return domain.RenameStoreResponse{}, domain.ErrStoreNotFound
	}

	return domain.RenameStoreResponse{
		Name:            newName,
		ReceiptsUpdated: receiptsUpdated,
		BillsUpdated:    billsUpdated,
		RenamedAt:       time.Now(),
	}, nil
}
