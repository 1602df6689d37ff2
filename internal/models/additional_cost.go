// internal/models/additional_cost.go
package models

// AdditionalCost is a non-ingredient cost charged to recipes: packaging,
// reusable equipment, labor and the like. UsefulLife > 0 means the unit cost
// is amortized over that many uses; 0 means the cost is consumed per use.
type AdditionalCost struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Category    CostCategory `json:"category" gorm:"type:varchar(30);not null;index"`
	UnitCost    float64      `json:"unit_cost" gorm:"type:decimal(10,2);not null"`
	Unit        string       `json:"unit,omitempty" gorm:"size:30"`
	UsefulLife  int          `json:"useful_life,omitempty"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
}

// RecipeAdditionalCost links an additional cost into a recipe with the
// quantity used per batch.
type RecipeAdditionalCost struct {
	BaseModel
	RecipeID         uint    `json:"recipe_id" gorm:"not null;index"`
	AdditionalCostID uint    `json:"additional_cost_id" gorm:"not null;index"`
	QuantityUsed     float64 `json:"quantity_used" gorm:"not null"`

	// Relationships
	AdditionalCost AdditionalCost `json:"additional_cost,omitempty" gorm:"foreignKey:AdditionalCostID"`
}
