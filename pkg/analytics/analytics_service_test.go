package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"guia-compras/domain"
	"guia-compras/entities"
)

type fakeAnalyticsRepository struct {
	receipts []*entities.Receipt
	bills    []*entities.Bill
	err      error
}

func (f *fakeAnalyticsRepository) GetReceiptsInRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.Receipt, error) {
	return f.receipts, f.err
}

func (f *fakeAnalyticsRepository) GetPaidBillsInRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.Bill, error) {
	return f.bills, f.err
}

func newReceipt(store string, total float64, date time.Time, items ...*entities.LineItem) *entities.Receipt {
	return &entities.Receipt{
		ID:           uuid.New(),
		StoreName:    store,
		TotalAmount:  decimal.NewFromFloat(total),
		PurchaseDate: date,
		LineItems:    items,
	}
}

func newItem(name string, price, unitPrice, quantity float64) *entities.LineItem {
	return &entities.LineItem{
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		UnitPrice: decimal.NewFromFloat(unitPrice),
		Quantity:  decimal.NewFromFloat(quantity),
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestSummaryAggregatesByStoreAndProduct(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Mercado Azul", 50, day(10),
			newItem("Arroz 5kg", 30, 30, 1),
			newItem("Feijão", 20, 10, 2),
		),
		newReceipt("Padaria Central", 12, day(9),
			newItem("Pão francês", 12, 1.2, 10),
		),
		newReceipt("Mercado Azul", 38, day(8),
			newItem("Arroz 5kg", 30, 30, 1),
			newItem("Leite", 8, 4, 2),
		),
	}}
	service := NewAnalyticsService(repo)

	summary, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, summary.PurchaseCount)
	assert.True(t, summary.AverageSpent.Equal(decimal.NewFromFloat(33.33)))
	assert.Equal(t, 2, summary.StoreCount)
	assert.Equal(t, 4, summary.ProductCount)

	assert.Equal(t, "Mercado Azul", summary.TopStores[0].Name)
	assert.True(t, summary.TopStores[0].Total.Equal(decimal.NewFromInt(88)))
	assert.Equal(t, 2, summary.TopStores[0].Count)

	assert.Equal(t, "Arroz 5kg", summary.TopProducts[0].Name)
	assert.True(t, summary.TopProducts[0].Total.Equal(decimal.NewFromInt(60)))
	assert.True(t, summary.TopProducts[0].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestSummaryTopListsCapAtFiveAndBreakTiesByFirstSeen(t *testing.T) {
	receipts := make([]*entities.Receipt, 0, 7)
	for i, store := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		receipts = append(receipts, newReceipt(store, 10, day(20-i)))
	}
	repo := &fakeAnalyticsRepository{receipts: receipts}
	service := NewAnalyticsService(repo)

	summary, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.Len(t, summary.TopStores, 5)
	// all totals tie, so insertion order (repository order) is preserved
	names := make([]string, 0, 5)
	for _, s := range summary.TopStores {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)
	assert.Equal(t, 7, summary.StoreCount)
}

func TestSummaryRecentPurchasesKeepsRepositoryOrder(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Primeiro", 1, day(12)),
		newReceipt("Segundo", 2, day(11)),
	}}
	service := NewAnalyticsService(repo)

	summary, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.Len(t, summary.RecentPurchases, 2)
	assert.Equal(t, "Primeiro", summary.RecentPurchases[0].StoreName)
	assert.Equal(t, "Segundo", summary.RecentPurchases[1].StoreName)
}

func TestSummaryEmptyRange(t *testing.T) {
	service := NewAnalyticsService(&fakeAnalyticsRepository{})

	summary, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.AverageSpent.IsZero())
	assert.Equal(t, 0, summary.PurchaseCount)
	assert.Empty(t, summary.TopStores)
	assert.Empty(t, summary.RecentPurchases)
}

func TestSummaryIsIdempotent(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Mercado Azul", 50, day(10), newItem("Arroz 5kg", 30, 30, 1)),
	}}
	service := NewAnalyticsService(repo)

	first, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)
	second, err := service.Summary(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProductsGroupsOccurrences(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Mercado Azul", 0, day(10), newItem("Café", 24, 12, 2)),
		newReceipt("Padaria Central", 0, day(12), newItem("Café", 14, 14, 1)),
	}}
	service := NewAnalyticsService(repo)

	catalog, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "", "")
	assert.NoError(t, err)
	assert.Len(t, catalog, 1)

	entry := catalog[0]
	assert.Equal(t, "Café", entry.Name)
	assert.True(t, entry.TotalSpent.Equal(decimal.NewFromInt(38)))
	assert.True(t, entry.TotalQuantity.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 2, entry.PurchaseCount)
	// mean of unit prices over occurrences: (12 + 14) / 2
	assert.True(t, entry.AverageUnitPrice.Equal(decimal.NewFromInt(13)))
	assert.Equal(t, []string{"Mercado Azul", "Padaria Central"}, entry.Stores)
	assert.Equal(t, day(12), entry.LastPurchase)
}

func TestProductsStoreFilterIsExactMatch(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Mercado Azul", 0, day(10), newItem("Café", 24, 12, 2)),
		newReceipt("Mercado Azul Matriz", 0, day(11), newItem("Leite", 8, 4, 2)),
	}}
	service := NewAnalyticsService(repo)

	catalog, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "Mercado Azul", "")
	assert.NoError(t, err)
	assert.Len(t, catalog, 1)
	assert.Equal(t, "Café", catalog[0].Name)
}

func TestProductsSorting(t *testing.T) {
	repo := &fakeAnalyticsRepository{receipts: []*entities.Receipt{
		newReceipt("Loja", 0, day(10),
			newItem("banana", 5, 5, 1),
			newItem("Arroz", 30, 30, 1),
			newItem("Café", 14, 14, 1),
		),
		newReceipt("Loja", 0, day(11), newItem("Café", 14, 14, 1)),
	}}
	service := NewAnalyticsService(repo)

	names := func(entries []domain.ProductCatalogEntry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name)
		}
		return out
	}

	byName, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "", "name")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Arroz", "banana", "Café"}, names(byName))

	priceAsc, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "", "price-asc")
	assert.NoError(t, err)
	assert.Equal(t, []string{"banana", "Café", "Arroz"}, names(priceAsc))

	priceDesc, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "", "price-desc")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Arroz", "Café", "banana"}, names(priceDesc))

	byCount, err := service.Products(context.Background(), uuid.NewString(), DateRange{}, "", "count")
	assert.NoError(t, err)
	assert.Equal(t, "Café", names(byCount)[0])
}

func TestHistoryMergesPurchasesAndPaidBills(t *testing.T) {
	paidAt := day(11)
	repo := &fakeAnalyticsRepository{
		receipts: []*entities.Receipt{
			newReceipt("Mercado Azul", 50, day(12), newItem("Arroz", 30, 30, 1)),
			newReceipt("Padaria Central", 12, day(10)),
		},
		bills: []*entities.Bill{{
			ID:           uuid.New(),
			SupplierName: "Energia Elétrica SA",
			Amount:       decimal.NewFromInt(180),
			Status:       entities.BillStatusPaid,
			PaymentDate:  &paidAt,
			CategoryName: "Utilidades",
		}},
	}
	service := NewAnalyticsService(repo)

	history, err := service.History(context.Background(), uuid.NewString(), DateRange{})
	assert.NoError(t, err)

	assert.Len(t, history.Entries, 3)
	assert.True(t, history.Total.Equal(decimal.NewFromInt(242)))

	// newest first, bill interleaved by payment date
	assert.Equal(t, domain.HistoryKindPurchase, history.Entries[0].Kind)
	assert.Equal(t, "Mercado Azul", history.Entries[0].Label)
	assert.Equal(t, domain.HistoryKindBill, history.Entries[1].Kind)
	assert.Equal(t, "Energia Elétrica SA", history.Entries[1].Label)
	assert.Equal(t, "Utilidades", history.Entries[1].CategoryName)
	assert.Equal(t, domain.HistoryKindPurchase, history.Entries[2].Kind)
}

func TestHistoryRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	service := NewAnalyticsService(&fakeAnalyticsRepository{err: boom})

	_, err := service.History(context.Background(), uuid.NewString(), DateRange{})
	assert.ErrorIs(t, err, boom)
}
