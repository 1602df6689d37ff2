// internal/services/costing_service.go
package services

import (
	"github.com/doceviva/doceria-backend/internal/models"

	"gorm.io/gorm"
)

// CostingService derives production costs from recipes and product
// compositions. All monetary math runs over preloaded rows; the service only
// touches the database to resolve IDs into full aggregates.
type CostingService struct {
	db *gorm.DB
}

func NewCostingService(db *gorm.DB) *CostingService {
	return &CostingService{db: db}
}

type IngredientCostLine struct {
	IngredientID   uint    `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Cost           float64 `json:"cost"`
}

type AdditionalCostLine struct {
	AdditionalCostID uint    `json:"additional_cost_id"`
	Name             string  `json:"name"`
	QuantityUsed     float64 `json:"quantity_used"`
	Cost             float64 `json:"cost"`
}

type RecipeCostBreakdown struct {
	RecipeID        uint                 `json:"recipe_id"`
	RecipeName      string               `json:"recipe_name"`
	Yield           int                  `json:"yield"`
	Ingredients     []IngredientCostLine `json:"ingredients"`
	AdditionalCosts []AdditionalCostLine `json:"additional_costs"`
	IngredientTotal float64              `json:"ingredient_total"`
	AdditionalTotal float64              `json:"additional_total"`
	BatchCost       float64              `json:"batch_cost"`
	UnitCost        float64              `json:"unit_cost"`
}

type ProductCostBreakdown struct {
	ProductID   uint             `json:"product_id"`
	ProductName string           `json:"product_name"`
	SalePrice   float64          `json:"sale_price"`
	Recipes     []RecipeCostLine `json:"recipes"`
	UnitCost    float64          `json:"unit_cost"`
	Margin      float64          `json:"margin"`
}

type RecipeCostLine struct {
	RecipeID     uint    `json:"recipe_id"`
	RecipeName   string  `json:"recipe_name"`
	QuantityUsed float64 `json:"quantity_used"`
	UnitCost     float64 `json:"unit_cost"`
	Cost         float64 `json:"cost"`
}

// RecipeIngredientCost prices one recipe line against its ingredient.
func RecipeIngredientCost(ri models.RecipeIngredient) float64 {
	converted := ToBaseUnit(ri.Quantity, ri.Unit, ri.Ingredient.Density)
	return IngredientCost(ri.Ingredient.PackagePrice, ri.Ingredient.PackageQuantity, converted)
}

// RecipeAdditionalCostTotal prices one additional-cost line. Costs with a
// useful life are amortized per use; the rest are charged in full.
func RecipeAdditionalCostTotal(rac models.RecipeAdditionalCost) float64 {
	if rac.AdditionalCost.UsefulLife > 0 {
		return rac.QuantityUsed * (rac.AdditionalCost.UnitCost / float64(rac.AdditionalCost.UsefulLife))
	}
	return rac.QuantityUsed * rac.AdditionalCost.UnitCost
}

// RecipeBatchCost sums ingredient and additional costs for one batch.
// The recipe must be preloaded with Ingredients.Ingredient and
// AdditionalCosts.AdditionalCost.
func RecipeBatchCost(recipe models.Recipe) float64 {
	total := 0.0
	for _, ri := range recipe.Ingredients {
		total += RecipeIngredientCost(ri)
	}
	for _, rac := range recipe.AdditionalCosts {
		total += RecipeAdditionalCostTotal(rac)
	}
	return total
}

// RecipeUnitCost divides the batch cost over the yield. Yields below one
// are treated as one so a misconfigured recipe never inflates the cost.
func RecipeUnitCost(recipe models.Recipe) float64 {
	yield := recipe.Yield
	if yield < 1 {
		yield = 1
	}
	return RecipeBatchCost(recipe) / float64(yield)
}

// ProductUnitCost sums, per composition line, the recipe's per-unit cost
// times the yield units consumed. The product must be preloaded down to the
// ingredient level.
func ProductUnitCost(product models.Product) float64 {
	total := 0.0
	for _, pc := range product.Composition {
		total += RecipeUnitCost(pc.Recipe) * pc.QuantityUsed
	}
	return total
}

func (s *CostingService) loadRecipe(id uint) (*models.Recipe, error) {
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

// RecipeCost resolves a recipe ID into a full per-line cost breakdown.
func (s *CostingService) RecipeCost(id uint) (*RecipeCostBreakdown, error) {
	recipe, err := s.loadRecipe(id)
	if err != nil {
		return nil, err
	}
	breakdown := buildRecipeBreakdown(*recipe)
	return &breakdown, nil
}

func buildRecipeBreakdown(recipe models.Recipe) RecipeCostBreakdown {
	breakdown := RecipeCostBreakdown{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		Yield:      recipe.Yield,
	}

	for _, ri := range recipe.Ingredients {
		cost := RecipeIngredientCost(ri)
		breakdown.Ingredients = append(breakdown.Ingredients, IngredientCostLine{
			IngredientID:   ri.IngredientID,
			IngredientName: ri.Ingredient.Name,
			Quantity:       ri.Quantity,
			Unit:           ri.Unit,
			Cost:           cost,
		})
		breakdown.IngredientTotal += cost
	}

	for _, rac := range recipe.AdditionalCosts {
		cost := RecipeAdditionalCostTotal(rac)
		breakdown.AdditionalCosts = append(breakdown.AdditionalCosts, AdditionalCostLine{
			AdditionalCostID: rac.AdditionalCostID,
			Name:             rac.AdditionalCost.Name,
			QuantityUsed:     rac.QuantityUsed,
			Cost:             cost,
		})
		breakdown.AdditionalTotal += cost
	}

	breakdown.BatchCost = breakdown.IngredientTotal + breakdown.AdditionalTotal
	breakdown.UnitCost = RecipeUnitCost(recipe)
	return breakdown
}

// ProductCost resolves a product ID into its per-recipe cost breakdown and
// the margin against the configured sale price.
func (s *CostingService) ProductCost(id uint) (*ProductCostBreakdown, error) {
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

	breakdown := ProductCostBreakdown{
		ProductID:   product.ID,
		ProductName: product.Name,
		SalePrice:   product.SalePrice,
	}

	for _, pc := range product.Composition {
		unitCost := RecipeUnitCost(pc.Recipe)
		cost := unitCost * pc.QuantityUsed
		breakdown.Recipes = append(breakdown.Recipes, RecipeCostLine{
			RecipeID:     pc.RecipeID,
			RecipeName:   pc.Recipe.Name,
			QuantityUsed: pc.QuantityUsed,
			UnitCost:     unitCost,
			Cost:         cost,
		})
		breakdown.UnitCost += cost
	}

	breakdown.Margin = product.SalePrice - breakdown.UnitCost
	return &breakdown, nil
}
