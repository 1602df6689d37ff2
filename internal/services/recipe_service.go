// internal/services/recipe_service.go
package services

import (
	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type CreateRecipeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Yield       int    `json:"yield" validate:"gte=0"`
}

type UpdateRecipeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Yield       *int    `json:"yield" validate:"omitempty,gte=0"`
}

type AddRecipeIngredientRequest struct {
	IngredientID uint    `json:"ingredient_id" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	Unit         string  `json:"unit" validate:"required,max=30"`
}

type UpdateRecipeIngredientRequest struct {
	Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit     *string  `json:"unit" validate:"omitempty,max=30"`
}

type AddRecipeAdditionalCostRequest struct {
	AdditionalCostID uint    `json:"additional_cost_id" validate:"required"`
	QuantityUsed     float64 `json:"quantity_used" validate:"gt=0"`
}

func coerceYield(y int) int {
	if y < 1 {
		return 1
	}
	return y
}

func (s *RecipeService) Create(req CreateRecipeRequest) (*models.Recipe, error) {
	var count int64
	s.db.Model(&models.Recipe{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	recipe := models.Recipe{
		Name:        req.Name,
		Description: req.Description,
		Yield:       coerceYield(req.Yield),
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &recipe, nil
}

func (s *RecipeService) List(params utils.PaginationParams) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	query := s.db.Model(&models.Recipe{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"name", "created_at"})
	query = utils.ApplyPagination(query, params)
	if err := query.Preload("Ingredients.Ingredient").
		Preload("AdditionalCosts.AdditionalCost").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Ingredients.Ingredient").
		Preload("AdditionalCosts.AdditionalCost").
		First(&recipe, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Update(id uint, req UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != recipe.Name {
		var count int64
		s.db.Model(&models.Recipe{}).Where("name = ? AND id <> ?", *req.Name, id).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateName
		}
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Yield != nil {
		recipe.Yield = coerceYield(*req.Yield)
	}

	if err := s.db.Save(recipe).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return s.Get(id)
}

// Delete refuses to remove a recipe that a product composition still uses.
// Linked ingredient and additional-cost rows go with the recipe.
func (s *RecipeService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	s.db.Model(&models.ProductComposition{}).Where("recipe_id = ?", id).Count(&refs)
	if refs > 0 {
		return ErrInUse
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeAdditionalCost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

func (s *RecipeService) AddIngredient(recipeID uint, req AddRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	if _, err := s.Get(recipeID); err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, req.IngredientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	link := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}

	link.Ingredient = ingredient
	return &link, nil
}

func (s *RecipeService) UpdateIngredient(linkID uint, req UpdateRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	var link models.RecipeIngredient
	if err := s.db.Preload("Ingredient").First(&link, linkID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Quantity != nil {
		link.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		link.Unit = *req.Unit
	}

	if err := s.db.Save(&link).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

func (s *RecipeService) RemoveIngredient(linkID uint) error {
	result := s.db.Delete(&models.RecipeIngredient{}, linkID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RecipeService) AddAdditionalCost(recipeID uint, req AddRecipeAdditionalCostRequest) (*models.RecipeAdditionalCost, error) {
	if _, err := s.Get(recipeID); err != nil {
		return nil, err
	}

	var cost models.AdditionalCost
	if err := s.db.First(&cost, req.AdditionalCostID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	link := models.RecipeAdditionalCost{
		RecipeID:         recipeID,
		AdditionalCostID: req.AdditionalCostID,
		QuantityUsed:     req.QuantityUsed,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}

	link.AdditionalCost = cost
	return &link, nil
}

func (s *RecipeService) RemoveAdditionalCost(linkID uint) error {
	result := s.db.Delete(&models.RecipeAdditionalCost{}, linkID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
