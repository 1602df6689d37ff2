// internal/services/ingredient_service.go
package services

import (
	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type CreateIngredientRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=255"`
	PackagePrice    float64 `json:"package_price" validate:"gte=0"`
	PackageQuantity float64 `json:"package_quantity" validate:"gt=0"`
	Density         float64 `json:"density" validate:"gte=0"`
}

type UpdateIngredientRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=255"`
	PackagePrice    *float64 `json:"package_price" validate:"omitempty,gte=0"`
	PackageQuantity *float64 `json:"package_quantity" validate:"omitempty,gt=0"`
	Density         *float64 `json:"density" validate:"omitempty,gte=0"`
}

func (s *IngredientService) Create(req CreateIngredientRequest) (*models.Ingredient, error) {
	var count int64
	s.db.Model(&models.Ingredient{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	density := req.Density
	if density <= 0 {
		density = 1.0
	}

	ingredient := models.Ingredient{
		Name:            req.Name,
		PackagePrice:    req.PackagePrice,
		PackageQuantity: req.PackageQuantity,
		Density:         density,
	}

	if err := s.db.Create(&ingredient).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &ingredient, nil
}

func (s *IngredientService) List(params utils.PaginationParams) ([]models.Ingredient, int64, error) {
	var ingredients []models.Ingredient
	var total int64

	query := s.db.Model(&models.Ingredient{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"name", "package_price", "created_at"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, total, nil
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(id uint, req UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != ingredient.Name {
		var count int64
		s.db.Model(&models.Ingredient{}).Where("name = ? AND id <> ?", *req.Name, id).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateName
		}
		ingredient.Name = *req.Name
	}
	if req.PackagePrice != nil {
		ingredient.PackagePrice = *req.PackagePrice
	}
	if req.PackageQuantity != nil {
		ingredient.PackageQuantity = *req.PackageQuantity
	}
	if req.Density != nil {
		density := *req.Density
		if density <= 0 {
			density = 1.0
		}
		ingredient.Density = density
	}

	if err := s.db.Save(ingredient).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return ingredient, nil
}

// Delete refuses to remove an ingredient that any recipe still uses.
func (s *IngredientService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	s.db.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&refs)
	if refs > 0 {
		return ErrInUse
	}

	return s.db.Delete(&models.Ingredient{}, id).Error
}
