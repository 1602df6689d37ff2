// internal/models/ingredient.go
package models

// Ingredient is a purchasable raw material. Costing is derived from the
// package price spread over the package quantity (in base units).
type Ingredient struct {
	BaseModel
	Name            string  `json:"name" gorm:"size:255;uniqueIndex;not null"`
	PackagePrice    float64 `json:"package_price" gorm:"type:decimal(10,2);not null"`
	PackageQuantity float64 `json:"package_quantity" gorm:"not null"`
	Density         float64 `json:"density" gorm:"default:1.0"`
}
