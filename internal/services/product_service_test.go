// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doceviva/doceria-backend/internal/models"
)

func TestProductCreateWithComposition(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	svc := NewProductService(db)

	product, err := svc.Create(CreateProductRequest{
		Name:      "brigadeiro gourmet",
		SalePrice: 4.50,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, product.Composition, 1)
	assert.Equal(t, dough.ID, product.Composition[0].RecipeID)
}

func TestProductCreateRollsBackOnMissingRecipe(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	svc := NewProductService(db)

	_, err := svc.Create(CreateProductRequest{
		Name:      "torta mista",
		SalePrice: 30.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
			{RecipeID: 999, QuantityUsed: 1},
		},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Neither the header nor the valid composition row may survive
	var products, compositions int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.ProductComposition{}).Count(&compositions)
	assert.Equal(t, int64(0), products)
	assert.Equal(t, int64(0), compositions)
}

func TestProductDuplicateName(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	svc := NewProductService(db)

	req := CreateProductRequest{
		Name:      "bolo de cenoura",
		SalePrice: 25.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	}
	_, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Create(req)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestProductDeleteDetachesSaleItems(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)

	product, err := productSvc.Create(CreateProductRequest{
		Name:      "pudim",
		SalePrice: 20.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	sale, err := salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-08-01",
		Items: []SaleItemRequest{
			{ProductID: product.ID, Quantity: 2, UnitSalePrice: 20.00},
		},
	})
	require.NoError(t, err)

	require.NoError(t, productSvc.Delete(product.ID))

	// The historical item keeps its numbers but loses the product link
	var item models.SaleItem
	require.NoError(t, db.Where("sale_id = ?", sale.ID).First(&item).Error)
	assert.Nil(t, item.ProductID)
	assert.InDelta(t, 2.50, item.UnitCost, 1e-9)

	var compositions int64
	db.Model(&models.ProductComposition{}).Where("product_id = ?", product.ID).Count(&compositions)
	assert.Equal(t, int64(0), compositions)
}

func TestRecipeDeleteBlockedWhileComposed(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	recipeSvc := NewRecipeService(db)

	_, err := productSvc.Create(CreateProductRequest{
		Name:      "sonho",
		SalePrice: 8.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	err = recipeSvc.Delete(dough.ID)
	assert.ErrorIs(t, err, ErrInUse)
}
