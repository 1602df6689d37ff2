// internal/services/report_service.go
package services

import (
	"sort"
	"time"

	"github.com/doceviva/doceria-backend/internal/config"
	"github.com/doceviva/doceria-backend/internal/models"

	"gorm.io/gorm"
)

// ReportService aggregates the sales and expense ledgers into period KPIs.
// One general window aggregation serves the current period and the two
// trailing comparison windows.
type ReportService struct {
	db  *gorm.DB
	cfg config.ReportConfig
}

func NewReportService(db *gorm.DB, cfg config.ReportConfig) *ReportService {
	return &ReportService{db: db, cfg: cfg}
}

type PeriodSummary struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	GrossProfit  float64 `json:"gross_profit"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
	TotalUnits   int     `json:"total_units"`
	SalesCount   int     `json:"sales_count"`
}

type ProductRanking struct {
	ProductID   *uint   `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
	GrossProfit float64 `json:"gross_profit"`
}

type WeeklyProfitPoint struct {
	WeekStart   string  `json:"week_start"`
	GrossProfit float64 `json:"gross_profit"`
}

type Dashboard struct {
	Current        PeriodSummary       `json:"current"`
	PreviousWeek   PeriodSummary       `json:"previous_week"`
	PreviousMonth  PeriodSummary       `json:"previous_month"`
	RevenueGrowth  *float64            `json:"revenue_growth_vs_week"`
	ProfitGrowth   *float64            `json:"profit_growth_vs_week"`
	RevenueGrowthM *float64            `json:"revenue_growth_vs_month"`
	ProfitGrowthM  *float64            `json:"profit_growth_vs_month"`
	WeeklyProfit   []WeeklyProfitPoint `json:"weekly_profit"`
	TopByUnits     []ProductRanking    `json:"top_by_units"`
	TopByProfit    []ProductRanking    `json:"top_by_profit"`
}

// Growth compares a value against a baseline. The denominator's absolute
// value keeps a shrinking loss reading as positive growth. A zero baseline
// has no meaningful comparison and yields nil.
func Growth(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	g := (current - previous) / abs(previous)
	return &g
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// AggregatePeriod folds preloaded ledger rows into one window's KPIs. Both
// bounds are inclusive. Items count only when their parent sale falls in
// the window.
func AggregatePeriod(sales []models.Sale, expenses []models.Expense, start, end time.Time) PeriodSummary {
	summary := PeriodSummary{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}

	for _, sale := range sales {
		if !inWindow(sale.Date, start, end) {
			continue
		}
		summary.SalesCount++
		summary.TotalRevenue += sale.Total
		for _, item := range sale.Items {
			summary.TotalUnits += item.Quantity
			summary.TotalCost += float64(item.Quantity) * item.UnitCost
		}
	}

	for _, expense := range expenses {
		if !inWindow(expense.Date, start, end) {
			continue
		}
		summary.TotalExpense += expense.Amount
	}

	summary.GrossProfit = summary.TotalRevenue - summary.TotalCost
	summary.NetProfit = summary.TotalRevenue - summary.TotalExpense
	return summary
}

// RankProducts builds per-product totals for one window, ordered copies by
// units sold and by gross profit. Items whose product was deleted keep
// their numbers under an "(removido)" label.
func RankProducts(sales []models.Sale, start, end time.Time, limit int) (byUnits, byProfit []ProductRanking) {
	type key struct {
		id   uint
		gone bool
	}
	totals := make(map[key]*ProductRanking)

	for _, sale := range sales {
		if !inWindow(sale.Date, start, end) {
			continue
		}
		for _, item := range sale.Items {
			k := key{gone: item.ProductID == nil}
			if item.ProductID != nil {
				k.id = *item.ProductID
			}
			entry, ok := totals[k]
			if !ok {
				entry = &ProductRanking{ProductID: item.ProductID, ProductName: "(removido)"}
				if item.Product != nil {
					entry.ProductName = item.Product.Name
				}
				totals[k] = entry
			}
			entry.UnitsSold += item.Quantity
			entry.Revenue += float64(item.Quantity) * item.UnitSalePrice
			entry.GrossProfit += float64(item.Quantity) * (item.UnitSalePrice - item.UnitCost)
		}
	}

	rankings := make([]ProductRanking, 0, len(totals))
	for _, entry := range totals {
		rankings = append(rankings, *entry)
	}

	byUnits = topN(rankings, limit, func(a, b ProductRanking) bool {
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.ProductName < b.ProductName
	})
	byProfit = topN(rankings, limit, func(a, b ProductRanking) bool {
		if a.GrossProfit != b.GrossProfit {
			return a.GrossProfit > b.GrossProfit
		}
		return a.ProductName < b.ProductName
	})
	return byUnits, byProfit
}

// WeeklyGrossProfit folds in-window sale items into one gross-profit point
// per calendar week, keyed by the Monday the week starts on, ordered
// chronologically.
func WeeklyGrossProfit(sales []models.Sale, start, end time.Time) []WeeklyProfitPoint {
	totals := make(map[string]float64)

	for _, sale := range sales {
		if !inWindow(sale.Date, start, end) {
			continue
		}
		week := weekStartOf(sale.Date).Format("2006-01-02")
		for _, item := range sale.Items {
			totals[week] += float64(item.Quantity) * (item.UnitSalePrice - item.UnitCost)
		}
	}

	points := make([]WeeklyProfitPoint, 0, len(totals))
	for week, profit := range totals {
		points = append(points, WeeklyProfitPoint{WeekStart: week, GrossProfit: profit})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].WeekStart < points[j].WeekStart })
	return points
}

func weekStartOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday-based week
	return d.AddDate(0, 0, -offset)
}

func topN(rankings []ProductRanking, n int, less func(a, b ProductRanking) bool) []ProductRanking {
	sorted := make([]ProductRanking, len(rankings))
	copy(sorted, rankings)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DashboardWindows derives the three adjacent reporting windows from the
// current one: the 7-day and 30-day windows each end the day before the
// current window starts.
func DashboardWindows(start, end time.Time) (weekStart, weekEnd, monthStart, monthEnd time.Time) {
	weekEnd = start.AddDate(0, 0, -1)
	weekStart = weekEnd.AddDate(0, 0, -6)
	monthEnd = weekEnd
	monthStart = monthEnd.AddDate(0, 0, -29)
	return weekStart, weekEnd, monthStart, monthEnd
}

// Dashboard aggregates the current window plus the two trailing comparison
// windows. Empty bounds default to the configured trailing period ending
// today.
func (s *ReportService) Dashboard(startStr, endStr string) (*Dashboard, error) {
	var start, end time.Time
	var err error

	if endStr == "" {
		now := time.Now().UTC()
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else if end, err = parseLedgerDate(endStr); err != nil {
		return nil, ErrInvalidInput
	}
	if startStr == "" {
		start = end.AddDate(0, 0, -(s.cfg.DefaultPeriodDays - 1))
	} else if start, err = parseLedgerDate(startStr); err != nil {
		return nil, ErrInvalidInput
	}
	if end.Before(start) {
		return nil, ErrInvalidInput
	}

	weekStart, weekEnd, monthStart, monthEnd := DashboardWindows(start, end)

	// One fetch covers all three windows; aggregation filters in memory.
	// The 30-day window reaches further back than the 7-day one.
	fetchStart := monthStart

	var sales []models.Sale
	err = s.db.Preload("Items.Product").
		Where("date >= ? AND date <= ?", fetchStart, end).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	err = s.db.
		Where("date >= ? AND date <= ?", fetchStart, end).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	current := AggregatePeriod(sales, expenses, start, end)
	week := AggregatePeriod(sales, expenses, weekStart, weekEnd)
	month := AggregatePeriod(sales, expenses, monthStart, monthEnd)
	topUnits, topProfit := RankProducts(sales, start, end, s.cfg.TopProducts)

	return &Dashboard{
		Current:        current,
		PreviousWeek:   week,
		PreviousMonth:  month,
		RevenueGrowth:  Growth(current.TotalRevenue, week.TotalRevenue),
		ProfitGrowth:   Growth(current.NetProfit, week.NetProfit),
		RevenueGrowthM: Growth(current.TotalRevenue, month.TotalRevenue),
		ProfitGrowthM:  Growth(current.NetProfit, month.NetProfit),
		WeeklyProfit:   WeeklyGrossProfit(sales, start, end),
		TopByUnits:     topUnits,
		TopByProfit:    topProfit,
	}, nil
}
