// internal/services/report_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doceviva/doceria-backend/internal/config"
	"github.com/doceviva/doceria-backend/internal/models"
)

func day(value string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGrowth(t *testing.T) {
	assert.Nil(t, Growth(100, 0))

	up := Growth(100, 50)
	require.NotNil(t, up)
	assert.InDelta(t, 1.0, *up, 1e-9)

	// Shrinking loss reads as negative change over a negative baseline,
	// signed by the numerator
	down := Growth(-100, -50)
	require.NotNil(t, down)
	assert.InDelta(t, -1.0, *down, 1e-9)
}

func TestAggregatePeriod(t *testing.T) {
	sales := []models.Sale{
		{
			Date:  day("2026-08-10"),
			Total: 50.00,
			Items: []models.SaleItem{
				{Quantity: 3, UnitSalePrice: 10.00, UnitCost: 2.50},
				{Quantity: 1, UnitSalePrice: 20.00, UnitCost: 5.00},
			},
		},
		{
			// Outside the window, must be ignored together with its items
			Date:  day("2026-09-01"),
			Total: 99.00,
			Items: []models.SaleItem{
				{Quantity: 9, UnitSalePrice: 11.00, UnitCost: 1.00},
			},
		},
	}
	expenses := []models.Expense{
		{Date: day("2026-08-12"), Amount: 20.00},
		{Date: day("2026-07-01"), Amount: 500.00},
	}

	summary := AggregatePeriod(sales, expenses, day("2026-08-01"), day("2026-08-31"))

	assert.InDelta(t, 50.00, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 20.00, summary.TotalExpense, 1e-9)
	assert.InDelta(t, 30.00, summary.NetProfit, 1e-9)
	assert.Equal(t, 4, summary.TotalUnits)
	assert.Equal(t, 1, summary.SalesCount)
	assert.InDelta(t, 12.50, summary.TotalCost, 1e-9)
	assert.InDelta(t, 37.50, summary.GrossProfit, 1e-9)
}

func TestAggregatePeriodInclusiveBounds(t *testing.T) {
	sales := []models.Sale{
		{Date: day("2026-08-01"), Total: 10.00},
		{Date: day("2026-08-31"), Total: 15.00},
	}

	summary := AggregatePeriod(sales, nil, day("2026-08-01"), day("2026-08-31"))
	assert.InDelta(t, 25.00, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 2, summary.SalesCount)
}

func TestDashboardWindowsAreAdjacent(t *testing.T) {
	start := day("2026-08-01")
	end := day("2026-08-30")

	weekStart, weekEnd, monthStart, monthEnd := DashboardWindows(start, end)

	// Both comparison windows end the day before the current one starts
	assert.Equal(t, day("2026-07-31"), weekEnd)
	assert.Equal(t, day("2026-07-25"), weekStart)
	assert.Equal(t, day("2026-07-31"), monthEnd)
	assert.Equal(t, day("2026-07-02"), monthStart)

	assert.Equal(t, 7.0, weekEnd.Sub(weekStart).Hours()/24+1)
	assert.Equal(t, 30.0, monthEnd.Sub(monthStart).Hours()/24+1)
}

func TestWeeklyGrossProfit(t *testing.T) {
	sales := []models.Sale{
		{
			// Monday 2026-08-10 week
			Date: day("2026-08-12"),
			Items: []models.SaleItem{
				{Quantity: 2, UnitSalePrice: 10.00, UnitCost: 4.00},
			},
		},
		{
			// Same week, accumulates into the same point
			Date: day("2026-08-14"),
			Items: []models.SaleItem{
				{Quantity: 1, UnitSalePrice: 20.00, UnitCost: 5.00},
			},
		},
		{
			// Monday 2026-08-17 week
			Date: day("2026-08-18"),
			Items: []models.SaleItem{
				{Quantity: 3, UnitSalePrice: 10.00, UnitCost: 2.00},
			},
		},
		{
			// Outside the window, must be ignored
			Date: day("2026-09-05"),
			Items: []models.SaleItem{
				{Quantity: 5, UnitSalePrice: 10.00, UnitCost: 1.00},
			},
		},
	}

	points := WeeklyGrossProfit(sales, day("2026-08-01"), day("2026-08-31"))

	require.Len(t, points, 2)
	assert.Equal(t, "2026-08-10", points[0].WeekStart)
	assert.InDelta(t, 27.00, points[0].GrossProfit, 1e-9)
	assert.Equal(t, "2026-08-17", points[1].WeekStart)
	assert.InDelta(t, 24.00, points[1].GrossProfit, 1e-9)
}

func TestWeekStartOfIsMonday(t *testing.T) {
	assert.Equal(t, day("2026-08-10"), weekStartOf(day("2026-08-10")))
	assert.Equal(t, day("2026-08-10"), weekStartOf(day("2026-08-16")))
}

func TestRankProducts(t *testing.T) {
	idA, idB := uint(1), uint(2)
	sales := []models.Sale{
		{
			Date: day("2026-08-10"),
			Items: []models.SaleItem{
				{ProductID: &idA, Product: &models.Product{Name: "brigadeiro"}, Quantity: 10, UnitSalePrice: 4.00, UnitCost: 1.00},
				{ProductID: &idB, Product: &models.Product{Name: "pudim"}, Quantity: 2, UnitSalePrice: 25.00, UnitCost: 5.00},
			},
		},
	}

	byUnits, byProfit := RankProducts(sales, day("2026-08-01"), day("2026-08-31"), 5)

	require.Len(t, byUnits, 2)
	assert.Equal(t, "brigadeiro", byUnits[0].ProductName)
	assert.Equal(t, 10, byUnits[0].UnitsSold)

	require.Len(t, byProfit, 2)
	// 2 x (25 - 5) = 40 beats 10 x (4 - 1) = 30
	assert.Equal(t, "pudim", byProfit[0].ProductName)
	assert.InDelta(t, 40.00, byProfit[0].GrossProfit, 1e-9)
}

func TestRankProductsLimit(t *testing.T) {
	ids := []uint{1, 2, 3}
	var items []models.SaleItem
	for i, id := range ids {
		id := id
		items = append(items, models.SaleItem{
			ProductID:     &id,
			Product:       &models.Product{Name: string(rune('a' + i))},
			Quantity:      i + 1,
			UnitSalePrice: 10.00,
		})
	}
	sales := []models.Sale{{Date: day("2026-08-10"), Items: items}}

	byUnits, _ := RankProducts(sales, day("2026-08-01"), day("2026-08-31"), 2)
	assert.Len(t, byUnits, 2)
}

func TestDashboardEndToEnd(t *testing.T) {
	db := newTestDB(t)
	_, dough := seedDoughRecipe(t, db)
	productSvc := NewProductService(db)
	salesSvc := NewSalesService(db)
	reportSvc := NewReportService(db, config.ReportConfig{DefaultPeriodDays: 90, TopProducts: 5})

	product, err := productSvc.Create(CreateProductRequest{
		Name:      "bolo de pote",
		SalePrice: 12.00,
		Composition: []ProductCompositionRequest{
			{RecipeID: dough.ID, QuantityUsed: 1},
		},
	})
	require.NoError(t, err)

	// Current window sale
	_, err = salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-08-15",
		Items: []SaleItemRequest{
			{ProductID: product.ID, Quantity: 5, UnitSalePrice: 12.00},
		},
	})
	require.NoError(t, err)

	// Trailing week sale
	_, err = salesSvc.RecordSale(RecordSaleRequest{
		Date: "2026-07-28",
		Items: []SaleItemRequest{
			{ProductID: product.ID, Quantity: 2, UnitSalePrice: 12.00},
		},
	})
	require.NoError(t, err)

	_, err = salesSvc.RecordExpense(RecordExpenseRequest{
		Description: "embalagens",
		Amount:      10.00,
		Date:        "2026-08-16",
	})
	require.NoError(t, err)

	dashboard, err := reportSvc.Dashboard("2026-08-01", "2026-08-30")
	require.NoError(t, err)

	assert.InDelta(t, 60.00, dashboard.Current.TotalRevenue, 1e-9)
	assert.InDelta(t, 50.00, dashboard.Current.NetProfit, 1e-9)
	assert.Equal(t, 5, dashboard.Current.TotalUnits)
	assert.InDelta(t, 24.00, dashboard.PreviousWeek.TotalRevenue, 1e-9)

	require.NotNil(t, dashboard.RevenueGrowth)
	assert.InDelta(t, 1.5, *dashboard.RevenueGrowth, 1e-9)

	require.Len(t, dashboard.TopByUnits, 1)
	assert.Equal(t, "bolo de pote", dashboard.TopByUnits[0].ProductName)

	// 5 x (12.00 - 2.50), bucketed under the Monday of the sale's week
	require.Len(t, dashboard.WeeklyProfit, 1)
	assert.Equal(t, "2026-08-10", dashboard.WeeklyProfit[0].WeekStart)
	assert.InDelta(t, 47.50, dashboard.WeeklyProfit[0].GrossProfit, 1e-9)
}

func TestDashboardRejectsInvertedRange(t *testing.T) {
	db := newTestDB(t)
	reportSvc := NewReportService(db, config.ReportConfig{DefaultPeriodDays: 90, TopProducts: 5})

	_, err := reportSvc.Dashboard("2026-08-30", "2026-08-01")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
