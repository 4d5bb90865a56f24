package models

import (
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
)

// Budget represents one budgeting month for a user.
//
// Budgets are created lazily when the user starts budgeting a month
// and are never regenerated. At most one budget exists per user and
// month.
type Budget struct {
	DefaultModel
	User   User        `json:"-"`
	UserID uuid.UUID   `json:"userId" gorm:"uniqueIndex:budget_user_month"`
	Month  types.Month `json:"month" gorm:"uniqueIndex:budget_user_month"`
}
