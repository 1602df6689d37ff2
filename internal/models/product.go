// internal/models/product.go
package models

// Product is a sellable item composed from one or more recipes.
type Product struct {
	BaseModel
	Name      string  `json:"name" gorm:"size:255;uniqueIndex;not null"`
	SalePrice float64 `json:"sale_price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Composition []ProductComposition `json:"composition,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductComposition maps how many yield units of a recipe go into one unit
// of the product. A value of 2 means the product consumes two units of the
// recipe's output, independent of batch size.
type ProductComposition struct {
	BaseModel
	ProductID    uint    `json:"product_id" gorm:"not null;index"`
	RecipeID     uint    `json:"recipe_id" gorm:"not null;index"`
	QuantityUsed float64 `json:"quantity_used" gorm:"not null"`

	// Relationships
	Recipe Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}
