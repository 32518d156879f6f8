package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"guia-compras/domain"
	"guia-compras/entities"
	"guia-compras/pkg/analytics"
)

type fakeStoreRepository struct {
	receipts        []*entities.Receipt
	bills           []*entities.Bill
	byStore         map[string][]*entities.Receipt
	receiptsRenamed int64
	billsRenamed    int64
	renameErr       error
	renameCalls     [][2]string
}

func (f *fakeStoreRepository) GetReceiptsInRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.Receipt, error) {
	return f.receipts, nil
}

func (f *fakeStoreRepository) GetPaidBillsInRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.Bill, error) {
	return f.bills, nil
}

func (f *fakeStoreRepository) GetReceiptsByStore(_ context.Context, _ string, storeName string) ([]*entities.Receipt, error) {
	return f.byStore[storeName], nil
}

func (f *fakeStoreRepository) RenameStore(_ context.Context, _ string, oldName, newName string) (int64, int64, error) {
	f.renameCalls = append(f.renameCalls, [2]string{oldName, newName})
	return f.receiptsRenamed, f.billsRenamed, f.renameErr
}

func storeReceipt(store string, total float64, date time.Time, items ...*entities.LineItem) *entities.Receipt {
	return &entities.Receipt{
		ID:           uuid.New(),
		StoreName:    store,
		TotalAmount:  decimal.NewFromFloat(total),
		PurchaseDate: date,
		LineItems:    items,
	}
}

func storeItem(name string, price, unitPrice, quantity float64) *entities.LineItem {
	return &entities.LineItem{
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		UnitPrice: decimal.NewFromFloat(unitPrice),
		Quantity:  decimal.NewFromFloat(quantity),
	}
}

func TestListStoresMergesReceiptsAndSuppliers(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeStoreRepository{
		receipts: []*entities.Receipt{
			storeReceipt("Mercado Azul", 50, date),
			storeReceipt("Mercado Azul", 30, date),
			storeReceipt("Padaria Central", 12, date),
		},
		bills: []*entities.Bill{{
			ID:           uuid.New(),
			SupplierName: "Energia Elétrica SA",
			Amount:       decimal.NewFromInt(180),
			Status:       entities.BillStatusPaid,
		}},
	}
	service := NewStoreService(repo)

	entries, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, "", "")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	// default sort is total descending
	assert.Equal(t, "Energia Elétrica SA", entries[0].Name)
	assert.Equal(t, domain.StoreKindSupplier, entries[0].Kind)
	assert.Equal(t, "Mercado Azul", entries[1].Name)
	assert.True(t, entries[1].Total.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 2, entries[1].Count)
	assert.Equal(t, "Padaria Central", entries[2].Name)
}

func TestListStoresKindFilter(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeStoreRepository{
		receipts: []*entities.Receipt{storeReceipt("Mercado Azul", 50, date)},
		bills: []*entities.Bill{{
			ID:           uuid.New(),
			SupplierName: "Energia Elétrica SA",
			Amount:       decimal.NewFromInt(180),
		}},
	}
	service := NewStoreService(repo)

	stores, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, domain.StoreKindStore, "")
	assert.NoError(t, err)
	assert.Len(t, stores, 1)
	assert.Equal(t, domain.StoreKindStore, stores[0].Kind)

	suppliers, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, domain.StoreKindSupplier, "")
	assert.NoError(t, err)
	assert.Len(t, suppliers, 1)
	assert.Equal(t, domain.StoreKindSupplier, suppliers[0].Kind)
}

func TestListStoresSorting(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeStoreRepository{
		receipts: []*entities.Receipt{
			storeReceipt("banana store", 10, date),
			storeReceipt("Açougue", 90, date),
			storeReceipt("Mercado Azul", 40, date),
			storeReceipt("Mercado Azul", 5, date),
		},
	}
	service := NewStoreService(repo)

	names := func(entries []domain.StoreListEntry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name)
		}
		return out
	}

	byName, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, "", "name")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Açougue", "banana store", "Mercado Azul"}, names(byName))

	totalAsc, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, "", "total-asc")
	assert.NoError(t, err)
	assert.Equal(t, []string{"banana store", "Mercado Azul", "Açougue"}, names(totalAsc))

	byCount, err := service.ListStores(context.Background(), uuid.NewString(), analytics.DateRange{}, "", "count")
	assert.NoError(t, err)
	assert.Equal(t, "Mercado Azul", names(byCount)[0])
}

func TestStoreDetailAggregatesProducts(t *testing.T) {
	older := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeStoreRepository{byStore: map[string][]*entities.Receipt{
		"Mercado Azul": {
			storeReceipt("Mercado Azul", 44, newer,
				storeItem("Café", 24, 12, 2),
				storeItem("Leite", 20, 5, 4),
			),
			storeReceipt("Mercado Azul", 14, older,
				storeItem("Café", 14, 14, 1),
			),
		},
	}}
	service := NewStoreService(repo)

	detail, err := service.StoreDetail(context.Background(), uuid.NewString(), "Mercado Azul")
	assert.NoError(t, err)

	assert.Equal(t, "Mercado Azul", detail.Name)
	assert.True(t, detail.TotalSpent.Equal(decimal.NewFromInt(58)))
	assert.Len(t, detail.Purchases, 2)
	assert.Len(t, detail.Products, 2)

	// products ranked by total spent
	cafe := detail.Products[0]
	assert.Equal(t, "Café", cafe.Name)
	assert.True(t, cafe.TotalSpent.Equal(decimal.NewFromInt(38)))
	assert.True(t, cafe.TotalQuantity.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 2, cafe.PurchaseCount)
	assert.True(t, cafe.AveragePrice.Equal(decimal.NewFromInt(13)))
}

func TestStoreDetailUnknownStore(t *testing.T) {
	service := NewStoreService(&fakeStoreRepository{byStore: map[string][]*entities.Receipt{}})

	_, err := service.StoreDetail(context.Background(), uuid.NewString(), "Loja Inexistente")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestRenameStore(t *testing.T) {
	repo := &fakeStoreRepository{receiptsRenamed: 3, billsRenamed: 1}
	service := NewStoreService(repo)

	response, err := service.RenameStore(context.Background(), domain.RenameStoreRequest{
		OldName: "  MERCADO AZUL LTDA  ",
		NewName: "Mercado Azul",
	}, uuid.NewString())
	assert.NoError(t, err)

	assert.Equal(t, "Mercado Azul", response.Name)
	assert.Equal(t, int64(3), response.ReceiptsUpdated)
	assert.Equal(t, int64(1), response.BillsUpdated)
	// names reach the repository trimmed
	assert.Equal(t, [2]string{"MERCADO AZUL LTDA", "Mercado Azul"}, repo.renameCalls[0])
}

func TestRenameStoreSameName(t *testing.T) {
	repo := &fakeStoreRepository{}
	service := NewStoreService(repo)

	_, err := service.RenameStore(context.Background(), domain.RenameStoreRequest{
		OldName: "Mercado Azul",
		NewName: "  Mercado Azul ",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSameStoreName)
	assert.Empty(t, repo.renameCalls)
}

func TestRenameStoreNothingMatched(t *testing.T) {
	service := NewStoreService(&fakeStoreRepository{})

	_, err := service.RenameStore(context.Background(), domain.RenameStoreRequest{
		OldName: "Loja Inexistente",
		NewName: "Outra Loja",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
