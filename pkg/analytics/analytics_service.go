package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"guia-compras/domain"
)

const topListSize = 5

type (
	AnalyticsService interface {
		Summary(ctx context.Context, userID string, rng DateRange) (domain.SummaryResponse, error)
		Products(ctx context.Context, userID string, rng DateRange, storeFilter, sortBy string) ([]domain.ProductCatalogEntry, error)
		History(ctx context.Context, userID string, rng DateRange) (domain.HistoryResponse, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

func (s *analyticsService) Summary(ctx context.Context, userID string, rng DateRange) (domain.SummaryResponse, error) {
	receipts, err := s.analyticsRepository.GetReceiptsInRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	totalSpent := decimal.Zero
	storeStats := make(map[string]*domain.StoreStat)
	storeOrder := make([]string, 0)
	productStats := make(map[string]*domain.ProductStat)
	productOrder := make([]string, 0)
	recent := make([]domain.RecentPurchase, 0, topListSize)

	for _, receipt := range receipts {
		totalSpent = totalSpent.Add(receipt.TotalAmount)

		stat, ok := storeStats[receipt.StoreName]
		if !ok {
			stat = &domain.StoreStat{Name: receipt.StoreName, Total: decimal.Zero}
			storeStats[receipt.StoreName] = stat
			storeOrder = append(storeOrder, receipt.StoreName)
		}
		stat.Total = stat.Total.Add(receipt.TotalAmount)
		stat.Count++

		for _, item := range receipt.LineItems {
			pstat, ok := productStats[item.Name]
			if !ok {
				pstat = &domain.ProductStat{Name: item.Name, Total: decimal.Zero, Quantity: decimal.Zero}
				productStats[item.Name] = pstat
				productOrder = append(productOrder, item.Name)
			}
			pstat.Total = pstat.Total.Add(item.Price)
			pstat.Quantity = pstat.Quantity.Add(item.Quantity)
		}

		if len(recent) < topListSize {
			recent = append(recent, domain.RecentPurchase{
				ID:           receipt.ID.String(),
				StoreName:    receipt.StoreName,
				TotalAmount:  receipt.TotalAmount,
				PurchaseDate: receipt.PurchaseDate,
				ItemCount:    len(receipt.LineItems),
			})
		}
	}

	topStores := make([]domain.StoreStat, 0, len(storeOrder))
	for _, name := range storeOrder {
		topStores = append(topStores, *storeStats[name])
	}
	sort.SliceStable(topStores, func(i, j int) bool {
		return topStores[i].Total.GreaterThan(topStores[j].Total)
	})
	if len(topStores) > topListSize {
		topStores = topStores[:topListSize]
	}

	topProducts := make([]domain.ProductStat, 0, len(productOrder))
	for _, name := range productOrder {
		topProducts = append(topProducts, *productStats[name])
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].Total.GreaterThan(topProducts[j].Total)
	})
	if len(topProducts) > topListSize {
		topProducts = topProducts[:topListSize]
	}

	averageSpent := decimal.Zero
	if len(receipts) > 0 {
		averageSpent = totalSpent.Div(decimal.NewFromInt(int64(len(receipts)))).Round(2)
	}

	return domain.SummaryResponse{
		TotalSpent:      totalSpent,
		PurchaseCount:   len(receipts),
		AverageSpent:    averageSpent,
		StoreCount:      len(storeStats),
		ProductCount:    len(productStats),
		TopStores:       topStores,
		TopProducts:     topProducts,
		RecentPurchases: recent,
	}, nil
}

func (s *analyticsService) Products(ctx context.Context, userID string, rng DateRange, storeFilter, sortBy string) ([]domain.ProductCatalogEntry, error) {
	receipts, err := s.analyticsRepository.GetReceiptsInRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	type productAcc struct {
		entry   domain.ProductCatalogEntry
		unitSum decimal.Decimal
		stores  map[string]struct{}
	}

	accs := make(map[string]*productAcc)
	order := make([]string, 0)

	for _, receipt := range receipts {
		if storeFilter != "" && receipt.StoreName != storeFilter {
			continue
		}

		for _, item := range receipt.LineItems {
			acc, ok := accs[item.Name]
			if !ok {
				acc = &productAcc{
					entry: domain.ProductCatalogEntry{
						Name:          item.Name,
						TotalSpent:    decimal.Zero,
						TotalQuantity: decimal.Zero,
					},
					unitSum: decimal.Zero,
					stores:  make(map[string]struct{}),
				}
				accs[item.Name] = acc
				order = append(order, item.Name)
			}

			acc.entry.TotalSpent = acc.entry.TotalSpent.Add(item.Price)
			acc.entry.TotalQuantity = acc.entry.TotalQuantity.Add(item.Quantity)
			acc.entry.PurchaseCount++
			acc.unitSum = acc.unitSum.Add(item.UnitPrice)
			acc.stores[receipt.StoreName] = struct{}{}
			if receipt.PurchaseDate.After(acc.entry.LastPurchase) {
				acc.entry.LastPurchase = receipt.PurchaseDate
			}
		}
	}

	catalog := make([]domain.ProductCatalogEntry, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		// Average unit price is the mean over line occurrences, not a
		// quantity-weighted average.
		acc.entry.AverageUnitPrice = acc.unitSum.Div(decimal.NewFromInt(int64(acc.entry.PurchaseCount))).Round(2)

		stores := make([]string, 0, len(acc.stores))
		for store := range acc.stores {
			stores = append(stores, store)
		}
		sort.Strings(stores)
		acc.entry.Stores = stores

		catalog = append(catalog, acc.entry)
	}

	switch sortBy {
	case "price-asc":
		sort.SliceStable(catalog, func(i, j int) bool {
			return catalog[i].AverageUnitPrice.LessThan(catalog[j].AverageUnitPrice)
		})
	case "price-desc":
		sort.SliceStable(catalog, func(i, j int) bool {
			return catalog[i].AverageUnitPrice.GreaterThan(catalog[j].AverageUnitPrice)
		})
	case "count":
		sort.SliceStable(catalog, func(i, j int) bool {
			return catalog[i].PurchaseCount > catalog[j].PurchaseCount
		})
	default: // "name"
		sort.SliceStable(catalog, func(i, j int) bool {
			return strings.ToLower(catalog[i].Name) < strings.ToLower(catalog[j].Name)
		})
	}

	return catalog, nil
}

func (s *analyticsService) History(ctx context.Context, userID string, rng DateRange) (domain.HistoryResponse, error) {
	receipts, err := s.analyticsRepository.GetReceiptsInRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return domain.HistoryResponse{}, err
	}

	bills, err := s.analyticsRepository.GetPaidBillsInRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return domain.HistoryResponse{}, err
	}

	entries := make([]domain.HistoryEntry, 0, len(receipts)+len(bills))
	total := decimal.Zero

	for _, receipt := range receipts {
		entries = append(entries, domain.HistoryEntry{
			Kind:      domain.HistoryKindPurchase,
			Date:      receipt.PurchaseDate,
			Label:     receipt.StoreName,
			Amount:    receipt.TotalAmount,
			ReceiptID: receipt.ID.String(),
			ItemCount: len(receipt.LineItems),
		})
		total = total.Add(receipt.TotalAmount)
	}

	for _, bill := range bills {
		var paidAt time.Time
		if bill.PaymentDate != nil {
			paidAt = *bill.PaymentDate
		}
		entries = append(entries, domain.HistoryEntry{
			Kind:         domain.HistoryKindBill,
			Date:         paidAt,
			Label:        bill.SupplierName,
			Amount:       bill.Amount,
			BillID:       bill.ID.String(),
			CategoryName: bill.CategoryName,
		})
		total = total.Add(bill.Amount)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return domain.HistoryResponse{
		Entries: entries,
		Total:   total,
	}, nil
}
