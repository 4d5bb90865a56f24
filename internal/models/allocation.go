package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAllocation is the money a user assigned to a category for one
// budgeting month. The amount is user-entered and may have any sign.
type CategoryAllocation struct {
	DefaultModel
	Budget     Budget          `json:"-"`
	BudgetID   uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:allocation_budget_category"`
	Category   Category        `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:allocation_budget_category"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}
