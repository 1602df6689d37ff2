// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyValidationInvalid = "validation.invalid"
	KeyInternalError     = "common.internal_error"
	KeyRateLimited       = "common.rate_limited"

	// Ingredients
	KeyIngredientCreated  = "ingredient.created"
	KeyIngredientUpdated  = "ingredient.updated"
	KeyIngredientDeleted  = "ingredient.deleted"
	KeyIngredientNotFound = "ingredient.not_found"
	KeyIngredientExists   = "ingredient.exists"
	KeyIngredientInUse    = "ingredient.in_use"

	// Recipes
	KeyRecipeCreated  = "recipe.created"
	KeyRecipeUpdated  = "recipe.updated"
	KeyRecipeDeleted  = "recipe.deleted"
	KeyRecipeNotFound = "recipe.not_found"
	KeyRecipeExists   = "recipe.exists"
	KeyRecipeInUse    = "recipe.in_use"

	// Additional costs
	KeyAdditionalCostCreated  = "additional_cost.created"
	KeyAdditionalCostUpdated  = "additional_cost.updated"
	KeyAdditionalCostDeleted  = "additional_cost.deleted"
	KeyAdditionalCostNotFound = "additional_cost.not_found"
	KeyAdditionalCostExists   = "additional_cost.exists"
	KeyAdditionalCostInUse    = "additional_cost.in_use"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyProductExists   = "product.exists"

	// Financial ledger
	KeySaleRecorded     = "sale.recorded"
	KeySaleDeleted      = "sale.deleted"
	KeySaleNotFound     = "sale.not_found"
	KeyExpenseRecorded  = "expense.recorded"
	KeyExpenseDeleted   = "expense.deleted"
	KeyExpenseNotFound  = "expense.not_found"
	KeyInvalidDateRange = "report.invalid_date_range"
)
