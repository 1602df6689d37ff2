// internal/services/sales_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"
)

func TestRecordSaleComputesTotal(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)

	productA, err := productSvc.Create(CreateProductRequest{
		Name:      "produto a",
		SalePrice: 10.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)
	productB, err := productSvc.Create(CreateProductRequest{
		Name:      "produto b",
		SalePrice: 20.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 2},
		},
	})
	require.NoError(t, err)

	sale, err := salesSvc.RecordSale(RecordSaleRequest{
		Date:          "2026-08-15",
		PaymentMethod: "pix",
		Items: []SaleItemRequest{
			{ProductID: productA.ID, Quantity: 3, UnitSalePrice: 10.00},
			{ProductID: productB.ID, Quantity: 1, UnitSalePrice: 20.00},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 50.00, sale.Total, 1e-9)
	assert.NotEmpty(t, sale.Reference)
	require.Len(t, sale.Items, 2)
}

func TestRecordSaleSnapshotsCost(t *testing.T) {
	db := newTestDB(t)
	flour, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)

	product, err := productSvc.Create(CreateProductRequest{
		Name:      "bolo simples",
		SalePrice: 10.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	sale, err := salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-08-15",
		Items: []SaleItemRequest{
			{ProductID: product.ID, Quantity: 1, UnitSalePrice: 10.00},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.50, sale.Items[0].UnitCost, 1e-9)

	// Doubling the flour price must not touch the recorded snapshot
	require.NoError(t, db.Model(&models.Ingredient{}).
		Where("id = ?", flour.ID).
		Update("package_price", 20.00).Error)

	reloaded, err := salesSvc.GetSale(sale.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.50, reloaded.Items[0].UnitCost, 1e-9)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	salesSvc := NewSalesService(db)

	_, err := salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-08-15",
		Items: []SaleItemRequest{
			{ProductID: 999, Quantity: 1, UnitSalePrice: 10.00},
		},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// No header may survive the failed item
	var sales int64
	db.Model(&models.Sale{}).Count(&sales)
	assert.Equal(t, int64(0), sales)
}

func TestRecordSaleRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	salesSvc := NewSalesService(db)

	_, err := salesSvc.RecordSale(RecordSaleRequest{
		Date: "15/08/2026",
		Items: []SaleItemRequest{
			{ProductID: 1, Quantity: 1, UnitSalePrice: 10.00},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteSaleCascadesToItems(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)

	product, err := productSvc.Create(CreateProductRequest{
		Name:      "trufa",
		SalePrice: 5.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	sale, err := salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-08-15",
		Items: []SaleItemRequest{
			{ProductID: product.ID, Quantity: 4, UnitSalePrice: 5.00},
		},
	})
	require.NoError(t, err)

	require.NoError(t, salesSvc.DeleteSale(sale.ID))

	var items int64
	db.Model(&models.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&items)
	assert.Equal(t, int64(0), items)

	err = salesSvc.DeleteSale(sale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseLifecycle(t *testing.T) {
	db := newTestDB(t)
	salesSvc := NewSalesService(db)

	expense, err := salesSvc.RecordExpense(RecordExpenseRequest{
		Description: "gás de cozinha",
		Amount:      110.00,
		Date:        "2026-08-10",
		Category:    "insumos",
	})
	require.NoError(t, err)

	expenses, total, err := salesSvc.ListExpenses(utils.PaginationParams{Page: 1, Limit: 10, Category: "insumos"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, expenses, 1)

	require.NoError(t, salesSvc.DeleteExpense(expense.ID))
	assert.ErrorIs(t, salesSvc.DeleteExpense(expense.ID), ErrNotFound)
}

func TestListSalesFiltersByDate(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)

	product, err := productSvc.Create(CreateProductRequest{
		Name:      "cookie",
		SalePrice: 6.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	for _, date := range []string{"2026-07-01", "2026-08-01", "2026-08-20"} {
		_, err := salesSvc.RecordSale(RecordSaleRequest{
			Date: date,
			Items: []SaleItemRequest{
				{ProductID: product.ID, Quantity: 1, UnitSalePrice: 6.00},
			},
		})
		require.NoError(t, err)
	}

	sales, total, err := salesSvc.ListSales(utils.PaginationParams{
		Page:  1,
		Limit: 10,
		Start: "2026-08-01",
		End:   "2026-08-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, sales, 2)
}
