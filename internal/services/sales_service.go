// internal/services/sales_service.go
package services

import (
	"time"

	"github.com/doceviva/doceria-backend/internal/database"
	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesService records sales into an append-only ledger. Line items freeze
// the product's unit cost at record time.
type SalesService struct {
	db *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

type SaleItemRequest struct {
	ProductID     uint    `json:"product_id" validate:"required"`
	Quantity      int     `json:"quantity" validate:"gt=0"`
	UnitSalePrice float64 `json:"unit_sale_price" validate:"gte=0"`
}

type RecordSaleRequest struct {
	Date          string            `json:"date" validate:"required,calendar_date"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao transferencia"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

type RecordExpenseRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"required,calendar_date"`
	Category    string  `json:"category" validate:"max=100"`
}

func parseLedgerDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

// RecordSale writes the header and all items in one transaction. The total
// and each item's cost snapshot are computed here and never revised.
func (s *SalesService) RecordSale(req RecordSaleRequest) (*models.Sale, error) {
	date, err := parseLedgerDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	var saleID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		sale := models.Sale{
			Reference:     uuid.NewString(),
			Date:          date,
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		}

		var items []models.SaleItem
		total := 0.0
		for _, line := range req.Items {
			var product models.Product
			pErr := tx.
				Preload("Composition.Recipe.Ingredients.Ingredient").
				Preload("Composition.Recipe.AdditionalCosts.AdditionalCost").
				First(&product, line.ProductID).Error
			if pErr != nil {
				if pErr == gorm.ErrRecordNotFound {
					return ErrNotFound
				}
				return pErr
			}

			productID := product.ID
			items = append(items, models.SaleItem{
				ProductID:     &productID,
				Quantity:      line.Quantity,
				UnitSalePrice: line.UnitSalePrice,
				UnitCost:      ProductUnitCost(product),
			})
			total += float64(line.Quantity) * line.UnitSalePrice
		}

		sale.Total = total
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		saleID = sale.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSale(saleID)
}

func (s *SalesService) ListSales(params utils.PaginationParams) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	query := s.db.Model(&models.Sale{})
	query = utils.ApplyDateRange(query, params, "date")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"date", "total", "created_at"})
	query = utils.ApplyPagination(query, params)
	if err := query.Preload("Items.Product").Find(&sales).Error; err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

func (s *SalesService) GetSale(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Preload("Items.Product").First(&sale, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// DeleteSale removes the header and all its items together.
func (s *SalesService) DeleteSale(id uint) error {
	if _, err := s.GetSale(id); err != nil {
		return err
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sale{}, id).Error
	})
}

func (s *SalesService) RecordExpense(req RecordExpenseRequest) (*models.Expense, error) {
	date, err := parseLedgerDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	expense := models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
	}

	if err := s.db.Create(&expense).Error; err != nil {
		return nil, err
	}

	return &expense, nil
}

func (s *SalesService) ListExpenses(params utils.PaginationParams) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := s.db.Model(&models.Expense{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	query = utils.ApplyDateRange(query, params, "date")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"date", "amount", "created_at"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&expenses).Error; err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (s *SalesService) DeleteExpense(id uint) error {
	result := s.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
