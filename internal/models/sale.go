// internal/models/sale.go
package models

import (
	"time"
)

// Sale is an append-only ledger entry. The total is derived from the line
// items at record time and never recomputed.
type Sale struct {
	BaseModel
	Reference     string        `json:"reference" gorm:"size:36;uniqueIndex;not null"`
	Date          time.Time     `json:"date" gorm:"type:date;not null;index"`
	Total         float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(30)"`

	// Relationships
	Items []SaleItem `json:"items,omitempty" gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// SaleItem freezes the unit production cost at sale time. Later changes to
// ingredient prices or recipe composition must not alter historical profit.
type SaleItem struct {
	BaseModel
	SaleID        uint    `json:"sale_id" gorm:"not null;index"`
	ProductID     *uint   `json:"product_id" gorm:"index"`
	Quantity      int     `json:"quantity" gorm:"not null"`
	UnitSalePrice float64 `json:"unit_sale_price" gorm:"type:decimal(10,2);not null"`
	UnitCost      float64 `json:"unit_cost" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}
