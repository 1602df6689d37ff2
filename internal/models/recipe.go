// internal/models/recipe.go
package models

type Recipe struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	// Yield is the number of sellable units one batch produces.
	Yield int `json:"yield" gorm:"not null;default:1"`

	// Relationships
	Ingredients     []RecipeIngredient     `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	AdditionalCosts []RecipeAdditionalCost `json:"additional_costs,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredient links an ingredient into a recipe with the quantity and
// unit of measure used per batch.
type RecipeIngredient struct {
	BaseModel
	RecipeID     uint    `json:"recipe_id" gorm:"not null;index"`
	IngredientID uint    `json:"ingredient_id" gorm:"not null;index"`
	Quantity     float64 `json:"quantity" gorm:"not null"`
	Unit         string  `json:"unit" gorm:"size:30;not null"`

	// Relationships
	Ingredient Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}
