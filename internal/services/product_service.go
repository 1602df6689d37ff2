// internal/services/product_service.go
package services

import (
	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"

	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type ProductCompositionRequest struct {
	RecipeID     uint    `json:"recipe_id" validate:"required"`
	QuantityUsed float64 `json:"quantity_used" validate:"gt=0"`
}

type CreateProductRequest struct {
	Name        string                      `json:"name" validate:"required,min=1,max=255"`
	SalePrice   float64                     `json:"sale_price" validate:"gte=0"`
	Composition []ProductCompositionRequest `json:"composition" validate:"required,min=1,dive"`
}

// Create writes the product and its composition atomically. A failure on
// any line leaves no partial product behind.
func (s *ProductService) Create(req CreateProductRequest) (*models.Product, error) {
	var count int64
	s.db.Model(&models.Product{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	var created models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product := models.Product{
			Name:      req.Name,
			SalePrice: req.SalePrice,
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		for _, line := range req.Composition {
			var recipe models.Recipe
			if err := tx.First(&recipe, line.RecipeID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrNotFound
				}
				return err
			}
			link := models.ProductComposition{
				ProductID:    product.ID,
				RecipeID:     line.RecipeID,
				QuantityUsed: line.QuantityUsed,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		created = product
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return s.Get(created.ID)
}

func (s *ProductService) List(params utils.PaginationParams) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := s.db.Model(&models.Product{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"name", "sale_price", "created_at"})
	query = utils.ApplyPagination(query, params)
	err := query.
		Preload("Composition.Recipe.Ingredients.Ingredient").
		Preload("Composition.Recipe.AdditionalCosts.AdditionalCost").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Composition.Recipe.Ingredients.Ingredient").
		Preload("Composition.Recipe.AdditionalCosts.AdditionalCost").
		First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and its composition. Historical sale items
// keep their cost snapshot and are detached, not deleted.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SaleItem{}).
			Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductComposition{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}
