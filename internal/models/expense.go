// internal/models/expense.go
package models

import (
	"time"
)

type Expense struct {
	BaseModel
	Description string    `json:"description" gorm:"size:255;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index"`
	Category    string    `json:"category,omitempty" gorm:"size:100;index"`
}
