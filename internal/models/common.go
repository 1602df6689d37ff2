// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "dinheiro"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodCard     PaymentMethod = "cartao"
	PaymentMethodTransfer PaymentMethod = "transferencia"
)

type CostCategory string

const (
	CostCategoryPackaging CostCategory = "embalagem"
	CostCategoryEquipment CostCategory = "equipamento"
	CostCategoryLabor     CostCategory = "mao_de_obra"
	CostCategoryOther     CostCategory = "outro"
)
